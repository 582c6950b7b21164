package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"tokencss/common"
)

// Recognized keys of a token object. Both plain and DTCG ($-prefixed)
// spellings are accepted.
var (
	valueKeys       = []string{"value", "$value"}
	typeKeys        = []string{"type", "$type"}
	descriptionKeys = []string{"description", "$description"}
)

// Parse reads single JSON token document. Source name is recorded in every
// token and used in error messages. Tokens are returned ordered by path in
// natural order.
//
// Any object which has a value key is a token, every other object is a group.
// Group type applies to tokens below it which do not declare their own type.
// Keys starting with "$" are metadata and never become path segments.
func Parse(data []byte, source string) ([]*Token, error) {
	// exports made on Windows frequently carry BOM, UTF-16 ones as well
	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	dec := json.NewDecoder(r)

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("unable to decode token document %s: %w", source, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unable to decode token document %s: trailing data", source)
	}

	var tokens []*Token
	if err := walk(root, nil, "", source, &tokens); err != nil {
		return nil, err
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return natural.Less(tokens[i].Key(), tokens[j].Key())
	})
	return tokens, nil
}

func walk(node map[string]any, path []string, inherited common.TokenType, source string, out *[]*Token) error {
	if t, ok := lookup(node, typeKeys); ok {
		s, ok := t.(string)
		if !ok {
			return fmt.Errorf("%s: %s: type must be a string, got %T", source, strings.Join(path, "."), t)
		}
		inherited = common.TokenType(s)
	}

	if v, ok := lookup(node, valueKeys); ok {
		if len(path) == 0 {
			return fmt.Errorf("%s: document root cannot be a token", source)
		}
		tok := &Token{
			Path:     slices.Clone(path),
			Type:     inherited,
			Original: v,
			Value:    cloneValue(v),
			FilePath: source,
		}
		if d, ok := lookup(node, descriptionKeys); ok {
			tok.Description, _ = d.(string)
		}
		*out = append(*out, tok)
		return nil
	}

	keys := slices.Collect(maps.Keys(node))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, "$") {
			continue
		}
		child, ok := node[k].(map[string]any)
		if !ok {
			// group type, description and stray scalars
			continue
		}
		if err := walk(child, append(path, k), inherited, source, out); err != nil {
			return err
		}
	}
	return nil
}

func lookup(node map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := node[k]; ok {
			return v, true
		}
	}
	return nil, false
}
