package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tokencss/config"
	"tokencss/format"
	"tokencss/misc"
	"tokencss/state"
	"tokencss/token"
	"tokencss/transform"
)

// process loads token documents under project directory and generates every
// configured output.
func process(ctx context.Context, dir string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	cfg := &env.Cfg.Tokens

	tokens, err := loadSources(ctx, dir, cfg, log)
	if err != nil {
		return fmt.Errorf("unable to load tokens: %w", err)
	}

	dict := token.NewDictionary(tokens, log)
	if err := dict.Resolve(); err != nil {
		return fmt.Errorf("unable to resolve token references: %w", err)
	}
	log.Info("Tokens loaded", zap.Int("count", dict.Len()))
	env.Rpt.StoreData("tokens.txt", []byte(dict.String()))

	transforms, formats := transform.NewRegistry(), format.NewRegistry()

	var errs error
	for i := range cfg.Platforms {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := &cfg.Platforms[i]
		if err := buildPlatform(ctx, dir, p, dict, transforms, formats, log.With(zap.String("platform", p.Name))); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("platform %s: %w", p.Name, err))
		}
	}
	return errs
}

// buildPlatform transforms copy of the dictionary for the platform and writes
// its files. Token which failed to transform spoils only files selecting it.
func buildPlatform(ctx context.Context, dir string, p *config.PlatformConfig, dict *token.Dictionary,
	transforms *transform.Registry, formats *format.Registry, log *zap.Logger) error {

	pipeline, err := transforms.Pipeline(p.TransformGroup, p.Transforms)
	if err != nil {
		return err
	}

	opts := transform.Options{Prefix: p.Prefix}
	failed := make(map[string]error)
	clones := make([]*token.Token, 0, dict.Len())
	for _, t := range dict.Tokens() {
		c := t.Clone()
		c.Name = strings.Join(c.Path, "-")
		if err := pipeline.Apply(c, opts); err != nil {
			failed[c.Key()] = err
		}
		clones = append(clones, c)
	}
	platform := token.NewDictionary(clones, log)

	var errs error
	for _, f := range p.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := buildFile(ctx, dir, p, f, platform, failed, formats, log); err != nil {
			log.Error("Unable to build file", zap.String("file", f.Destination), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.Destination, err))
		}
	}
	return errs
}

func buildFile(ctx context.Context, dir string, p *config.PlatformConfig, f config.FileConfig, dict *token.Dictionary,
	failed map[string]error, formats *format.Registry, log *zap.Logger) error {

	env := state.EnvFromContext(ctx)

	formatter, err := formats.Get(f.Format)
	if err != nil {
		return err
	}

	selected := dict.Filter(func(t *token.Token) bool {
		return f.Filter.Type == "" || string(t.Type) == f.Filter.Type
	})
	var errs error
	for _, t := range selected {
		errs = multierr.Append(errs, failed[t.Key()])
	}
	if errs != nil {
		return errs
	}

	text := env.Cfg.Tokens.Header
	if text == "" {
		text = format.DefaultHeader
	}
	header, err := format.RenderHeader(text, format.HeaderValues{
		Destination: f.Destination,
		Platform:    p.Name,
		Format:      f.Format,
		Tokens:      len(selected),
		Version:     misc.GetVersion(),
	})
	if err != nil {
		return err
	}

	out, err := formatter(selected, format.Options{
		Header:           header,
		Prefix:           p.Prefix,
		OutputReferences: f.OutputReferences,
		Tokens:           dict,
	})
	if err != nil {
		return err
	}
	env.Rpt.StoreData(path.Join("output", p.Name, f.Destination), []byte(out))

	outputName := filepath.Join(p.BuildPath, f.Destination)
	if !filepath.IsAbs(outputName) {
		outputName = filepath.Join(dir, outputName)
	}

	if env.DryRun {
		log.Info("Generated stylesheet (dry run)", zap.String("file", outputName), zap.Int("tokens", len(selected)), zap.String("content", out))
		return nil
	}
	if err := writeOutput(outputName, []byte(out), env.OverwriteOutputs(), log); err != nil {
		return err
	}
	log.Info("Stylesheet written", zap.String("file", outputName), zap.Int("tokens", len(selected)))
	return nil
}

var errOutputExists = errors.New("output file already exists")

// writeOutput writes file creating directories as necessary. Existing file
// is replaced only when overwrite is allowed.
func writeOutput(name string, data []byte, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", errOutputExists, name)
		}
		log.Debug("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.WriteFile(name, data, 0644)
}
