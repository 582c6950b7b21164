package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrReference is returned for references which cannot be resolved.
var ErrReference = errors.New("reference error")

// refPattern matches {path.to.token} references inside string values.
var refPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// References returns referenced keys found in value, in order of appearance.
// Composite values are searched recursively.
func References(v any) []string {
	var refs []string
	switch x := v.(type) {
	case string:
		for _, m := range refPattern.FindAllStringSubmatch(x, -1) {
			refs = append(refs, strings.TrimSpace(m[1]))
		}
	case map[string]any:
		for _, k := range sortedKeys(x) {
			refs = append(refs, References(x[k])...)
		}
	case []any:
		for _, e := range x {
			refs = append(refs, References(e)...)
		}
	}
	return refs
}

// ReplaceReferences calls fn for every reference in s and substitutes the
// whole "{...}" with its result.
func ReplaceReferences(s string, fn func(ref string) string) string {
	return refPattern.ReplaceAllStringFunc(s, func(m string) string {
		return fn(strings.TrimSpace(m[1 : len(m)-1]))
	})
}

// Dictionary is an ordered collection of tokens addressable by key.
type Dictionary struct {
	tokens []*Token
	index  map[string]*Token
}

// NewDictionary builds dictionary from tokens of several documents. Tokens
// are ordered by source file and then by path, both in natural order. When
// the same key is defined more than once the definition coming later in this
// order wins.
func NewDictionary(tokens []*Token, log *zap.Logger) *Dictionary {
	if log == nil {
		log = zap.NewNop()
	}
	sorted := make([]*Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FilePath != sorted[j].FilePath {
			return natural.Less(sorted[i].FilePath, sorted[j].FilePath)
		}
		return natural.Less(sorted[i].Key(), sorted[j].Key())
	})

	d := &Dictionary{index: make(map[string]*Token, len(sorted))}
	for _, t := range sorted {
		if prev, exists := d.index[t.Key()]; exists {
			log.Warn("Token redefined, using later definition",
				zap.String("token", t.Key()), zap.String("was", prev.FilePath), zap.String("now", t.FilePath))
			for i := range d.tokens {
				if d.tokens[i] == prev {
					d.tokens[i] = t
					break
				}
			}
		} else {
			d.tokens = append(d.tokens, t)
		}
		d.index[t.Key()] = t
	}
	return d
}

// Tokens returns all tokens in dictionary order.
func (d *Dictionary) Tokens() []*Token {
	return d.tokens
}

// Len returns number of tokens.
func (d *Dictionary) Len() int {
	return len(d.tokens)
}

// Lookup finds token by reference key. Older exports spell references with
// trailing ".value", it is ignored.
func (d *Dictionary) Lookup(ref string) (*Token, bool) {
	if t, ok := d.index[ref]; ok {
		return t, true
	}
	if k, ok := strings.CutSuffix(ref, ".value"); ok {
		t, ok := d.index[k]
		return t, ok
	}
	return nil, false
}

// Filter returns tokens for which match is true, keeping dictionary order.
func (d *Dictionary) Filter(match func(*Token) bool) []*Token {
	var out []*Token
	for _, t := range d.tokens {
		if match == nil || match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Resolve replaces references in every token value with referenced values.
// A value consisting of a single reference takes the referenced value with
// its shape (a composite typography value stays composite), references
// embedded in text are substituted by their textual form. All problems are
// reported together, tokens which failed keep their original value.
func (d *Dictionary) Resolve() error {
	r := resolver{dict: d, state: make(map[string]int, len(d.tokens))}
	var errs error
	for _, t := range d.tokens {
		errs = multierr.Append(errs, r.token(t, nil))
	}
	return errs
}

const (
	unvisited = iota
	visiting
	resolved
	failed
)

type resolver struct {
	dict  *Dictionary
	state map[string]int
}

func (r *resolver) token(t *Token, chain []string) error {
	key := t.Key()
	switch r.state[key] {
	case resolved:
		return nil
	case failed:
		// reported once, where it happened
		if len(chain) > 0 {
			return fmt.Errorf("%w: %s depends on unresolved %s", ErrReference, chain[len(chain)-1], key)
		}
		return nil
	case visiting:
		return fmt.Errorf("%w: circular reference %s", ErrReference, strings.Join(append(chain, key), " -> "))
	}

	r.state[key] = visiting
	v, err := r.value(t.Original, append(chain, key))
	if err != nil {
		r.state[key] = failed
		t.Value = cloneValue(t.Original)
		return err
	}
	t.Value = v
	r.state[key] = resolved
	return nil
}

func (r *resolver) value(v any, chain []string) (any, error) {
	switch x := v.(type) {
	case string:
		return r.text(x, chain)
	case map[string]any:
		out := make(map[string]any, len(x))
		var errs error
		for _, k := range sortedKeys(x) {
			e, err := r.value(x[k], chain)
			errs = multierr.Append(errs, err)
			out[k] = e
		}
		return out, errs
	case []any:
		out := make([]any, len(x))
		var errs error
		for i, e := range x {
			var err error
			out[i], err = r.value(e, chain)
			errs = multierr.Append(errs, err)
		}
		return out, errs
	}
	return v, nil
}

func (r *resolver) text(s string, chain []string) (any, error) {
	if !refPattern.MatchString(s) {
		return s, nil
	}

	// whole value is a single reference
	if m := refPattern.FindStringSubmatchIndex(s); m[0] == 0 && m[1] == len(s) {
		ref, err := r.ref(strings.TrimSpace(s[m[2]:m[3]]), chain)
		if err != nil {
			return s, err
		}
		return cloneValue(ref.Value), nil
	}

	var errs error
	out := ReplaceReferences(s, func(key string) string {
		ref, err := r.ref(key, chain)
		if err != nil {
			errs = multierr.Append(errs, err)
			return "{" + key + "}"
		}
		switch ref.Value.(type) {
		case map[string]any, []any:
			errs = multierr.Append(errs, fmt.Errorf("%w: %s: composite value of %s cannot be embedded in text", ErrReference, chain[len(chain)-1], key))
			return "{" + key + "}"
		}
		return stringify(ref.Value)
	})
	return out, errs
}

func (r *resolver) ref(key string, chain []string) (*Token, error) {
	t, ok := r.dict.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s refers to undefined %s", ErrReference, chain[len(chain)-1], key)
	}
	if err := r.token(t, chain); err != nil {
		return nil, err
	}
	return t, nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
