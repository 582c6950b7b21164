package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// FilterConfig selects tokens for a file. Type is compared verbatim with
	// token type, types unknown to the program are allowed.
	FilterConfig struct {
		Type string `yaml:"type,omitempty"`
	}

	FileConfig struct {
		Destination      string       `yaml:"destination" validate:"required"`
		Format           string       `yaml:"format" validate:"required"`
		Filter           FilterConfig `yaml:"filter"`
		OutputReferences bool         `yaml:"output_references"`
	}

	PlatformConfig struct {
		Name           string       `yaml:"name" validate:"required"`
		TransformGroup string       `yaml:"transform_group" validate:"required_without=Transforms"`
		Transforms     []string     `yaml:"transforms,omitempty" validate:"dive,required"`
		BuildPath      string       `yaml:"build_path" validate:"required"`
		Prefix         string       `yaml:"prefix"`
		Files          []FileConfig `yaml:"files" validate:"required,min=1,dive"`
	}

	TokensConfig struct {
		Sources        []string         `yaml:"sources" validate:"required,min=1,dive,required"`
		ArchivePattern string           `yaml:"archive_pattern"`
		Header         string           `yaml:"header"`
		Overwrite      bool             `yaml:"overwrite"`
		Platforms      []PlatformConfig `yaml:"platforms" validate:"required,min=1,dive"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Tokens    TokensConfig   `yaml:"tokens"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// HeaderFieldName must match yaml name of TokensConfig.Header, header is a
// template expanded for every output file and not by configuration loader.
const HeaderFieldName = "header"

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(HeaderFieldName),
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
