// Package token loads design tokens exported as JSON, keeps them in a
// dictionary and resolves references between them.
package token

import (
	"slices"
	"strings"

	"tokencss/common"
)

// Attributes classify token by its path (category/type/item).
type Attributes struct {
	Category string
	Type     string
	Item     string
	Subitem  string
	State    string
}

// Token is a single design token.
//
// Value is nil, string, float64, bool, map[string]any or []any. Original is
// the value as it was found in the source document, Value starts as a copy of
// it, has references resolved by the dictionary and is later rewritten by
// transforms.
type Token struct {
	Path        []string
	Name        string
	Type        common.TokenType
	Description string
	Original    any
	Value       any
	Attributes  Attributes
	// FilePath is the source document, for archives "archive.zip/inner/path".
	FilePath string
}

// Key returns dotted path which is also the reference form without braces.
func (t *Token) Key() string {
	return strings.Join(t.Path, ".")
}

// OriginalString returns original value when it is a string.
func (t *Token) OriginalString() (string, bool) {
	s, ok := t.Original.(string)
	return s, ok
}

// IsReference reports whether original value refers to other tokens.
func (t *Token) IsReference() bool {
	return len(References(t.Original)) > 0
}

// Clone makes a copy independent enough for per-platform transformation.
// Composite values are copied, scalars are shared.
func (t *Token) Clone() *Token {
	c := *t
	c.Path = slices.Clone(t.Path)
	c.Value = cloneValue(t.Value)
	return &c
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(x))
		for i, e := range x {
			s[i] = cloneValue(e)
		}
		return s
	}
	return v
}
