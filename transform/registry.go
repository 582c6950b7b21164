// Package transform converts token values into their stylesheet form. It
// holds the value rules for typography, spacing and colors, the rounding
// helper used by exported expressions and a registry of named transforms
// platforms are configured with.
package transform

import (
	"errors"
	"fmt"
	"slices"

	"tokencss/common"
	"tokencss/token"
)

// Options carry platform settings transforms may depend on.
type Options struct {
	Prefix string
}

// Transform rewrites part of a token selected by Kind. Matcher selects tokens
// the transform applies to, nil matcher applies to all.
type Transform struct {
	Name        string
	Kind        common.TransformKind
	Matcher     func(t *token.Token) bool
	Transformer func(t *token.Token, opts Options) error
}

// Names of built-in transform groups.
const (
	GroupCSS  = "css"
	GroupSCSS = "scss"
)

var ErrUnknownTransform = errors.New("unknown transform")

// Registry keeps named transforms and transform groups. It is an ordinary
// value: every build creates its own and nothing is registered globally.
type Registry struct {
	transforms map[string]Transform
	groups     map[string][]string
}

// NewRegistry returns registry populated with built-in transforms and groups.
func NewRegistry() *Registry {
	r := &Registry{
		transforms: make(map[string]Transform),
		groups:     make(map[string][]string),
	}
	for _, t := range builtins() {
		r.transforms[t.Name] = t
	}
	standard := []string{AttributeCTI, NameCTIKebab, TimeSeconds, ContentIcon, SizeRem, ColorCSS}
	r.groups[GroupCSS] = standard
	r.groups[GroupSCSS] = slices.Clone(standard)
	return r
}

// Register adds transform. Names must be unique.
func (r *Registry) Register(t Transform) error {
	if t.Name == "" || t.Transformer == nil {
		return errors.New("transform must have name and transformer")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("transform %s: invalid kind %s", t.Name, t.Kind)
	}
	if _, exists := r.transforms[t.Name]; exists {
		return fmt.Errorf("transform %s is already registered", t.Name)
	}
	r.transforms[t.Name] = t
	return nil
}

// RegisterGroup adds named list of transforms, all of them must be known.
func (r *Registry) RegisterGroup(name string, transforms []string) error {
	if _, exists := r.groups[name]; exists {
		return fmt.Errorf("transform group %s is already registered", name)
	}
	for _, n := range transforms {
		if _, ok := r.transforms[n]; !ok {
			return fmt.Errorf("transform group %s: %w %s", name, ErrUnknownTransform, n)
		}
	}
	r.groups[name] = slices.Clone(transforms)
	return nil
}

// Names returns names of all registered transforms, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for n := range r.transforms {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Pipeline assembles transforms for a platform. Explicit list of names takes
// precedence over the group, at least one of them must be given.
func (r *Registry) Pipeline(group string, names []string) (Pipeline, error) {
	if len(names) == 0 {
		if group == "" {
			return nil, errors.New("neither transforms nor transform group specified")
		}
		var ok bool
		if names, ok = r.groups[group]; !ok {
			return nil, fmt.Errorf("unknown transform group %s", group)
		}
	}
	p := make(Pipeline, 0, len(names))
	for _, n := range names {
		t, ok := r.transforms[n]
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnknownTransform, n)
		}
		p = append(p, t)
	}
	return p, nil
}

// Pipeline is an ordered list of transforms.
type Pipeline []Transform

// Apply runs pipeline on the token in place. Attribute transforms run first
// so matchers of the others can rely on attributes, then name transforms and
// finally value transforms, keeping configured order inside each kind.
func (p Pipeline) Apply(t *token.Token, opts Options) error {
	for _, kind := range []common.TransformKind{common.TransformKindAttribute, common.TransformKindName, common.TransformKindValue} {
		for _, tr := range p {
			if tr.Kind != kind || (tr.Matcher != nil && !tr.Matcher(t)) {
				continue
			}
			if err := tr.Transformer(t, opts); err != nil {
				return fmt.Errorf("%s: %s: %w", tr.Name, t.Key(), err)
			}
		}
	}
	return nil
}
