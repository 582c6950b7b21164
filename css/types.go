// Package css reads generated stylesheets back to verify them: which custom
// properties they declare and which var() references they use.
package css

import (
	"regexp"
	"strings"
)

// Declaration is a single property declaration inside a rule.
type Declaration struct {
	Property string
	Value    string
}

// IsCustom reports whether declaration defines custom property (--name).
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Property, "--")
}

// References returns custom property names used in var() of the value.
func (d Declaration) References() []string {
	var refs []string
	for _, m := range varPattern.FindAllStringSubmatch(d.Value, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// varPattern matches var(--name) and var(--name, fallback).
var varPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*[,)]`)

// Rule represents a single CSS rule (selector + declarations) in source order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// CustomProperties returns every custom property declaration in source order.
func (s *Stylesheet) CustomProperties() []Declaration {
	var out []Declaration
	for _, r := range s.Rules {
		for _, d := range r.Declarations {
			if d.IsCustom() {
				out = append(out, d)
			}
		}
	}
	return out
}
