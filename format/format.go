// Package format produces stylesheet text from transformed tokens.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tokencss/token"
)

// Names of built-in formats.
const (
	Variables           = "css/variables"
	TypographyVariables = "css/variables/typography"
	OtherVariables      = "css/variables/other"
)

var ErrUnknownFormat = errors.New("unknown format")

// Resolver finds transformed token by reference key.
type Resolver interface {
	Lookup(ref string) (*token.Token, bool)
}

// Options describe output file being produced.
type Options struct {
	// Header is the already rendered header text, empty means no header.
	Header string
	// Prefix is platform variable name prefix.
	Prefix string
	// OutputReferences keeps references as var() instead of resolved values.
	OutputReferences bool
	// Tokens resolves references, required with OutputReferences.
	Tokens Resolver
}

// Formatter produces complete file content from tokens selected for it.
type Formatter func(tokens []*token.Token, opts Options) (string, error)

// Registry keeps named formatters. Each build constructs its own.
type Registry struct {
	formats map[string]Formatter
}

// NewRegistry returns registry with built-in formats.
func NewRegistry() *Registry {
	return &Registry{formats: map[string]Formatter{
		Variables:           variables,
		TypographyVariables: typography,
		OtherVariables:      other,
	}}
}

// Register adds formatter under unique name.
func (r *Registry) Register(name string, f Formatter) error {
	if name == "" || f == nil {
		return errors.New("format must have name and formatter")
	}
	if _, exists := r.formats[name]; exists {
		return fmt.Errorf("format %s is already registered", name)
	}
	r.formats[name] = f
	return nil
}

// Get returns formatter by name.
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formats[name]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns names of registered formats, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for n := range r.formats {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// root wraps declaration blocks into ":root" rule preceded by header.
// Blocks are separated by an empty line.
func root(header string, blocks []string) string {
	var b strings.Builder
	b.WriteString(comment(header))
	b.WriteString(":root {\n")
	b.WriteString(strings.Join(blocks, "\n"))
	b.WriteString("\n}\n")
	return b.String()
}
