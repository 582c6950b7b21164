package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"tokencss/token"
	"tokencss/transform"
)

// typographyOrder is the order sub-properties are written in, keys not
// listed follow in natural order.
var typographyOrder = []string{
	transform.FontFamily,
	transform.FontWeight,
	transform.LineHeight,
	transform.FontSize,
	transform.LetterSpacing,
	transform.ParagraphSpacing,
	transform.ParagraphIndent,
	transform.TextCase,
	transform.TextTransform,
	transform.TextDecoration,
}

// typography expands every composite typography token into a group of
// custom properties, one per sub-value.
func typography(tokens []*token.Token, opts Options) (string, error) {
	blocks := make([]string, 0, len(tokens))
	for _, t := range tokens {
		value, ok := t.Value.(map[string]any)
		if !ok {
			return "", fmt.Errorf("typography token %s does not have composite value", t.Key())
		}

		var b strings.Builder
		for _, key := range typographyKeys(value) {
			p, emit, err := transform.TypographyProperty(key, value[key])
			if err != nil {
				return "", fmt.Errorf("token %s: %w", t.Key(), err)
			}
			if emit {
				fmt.Fprintf(&b, "  --%s-%s: %s;\n", t.Name, p.Name, p.Value)
			}
		}
		blocks = append(blocks, b.String())
	}
	return root(opts.Header, blocks), nil
}

// typographyKeys returns keys of typography value in output order. When two
// keys have the same kebab form (fontSize and font-size) only the one which
// sorts last is kept.
func typographyKeys(value map[string]any) []string {
	raw := make([]string, 0, len(value))
	for k := range value {
		raw = append(raw, k)
	}
	sort.Sort(natural.StringSlice(raw))

	byKebab := make(map[string]string, len(raw))
	for _, k := range raw {
		byKebab[transform.ToKebab(k)] = k
	}

	keys := make([]string, 0, len(byKebab))
	for _, k := range typographyOrder {
		if orig, ok := byKebab[k]; ok {
			keys = append(keys, orig)
			delete(byKebab, k)
		}
	}
	rest := make([]string, 0, len(byKebab))
	for k := range byKebab {
		rest = append(rest, k)
	}
	sort.Sort(natural.StringSlice(rest))
	for _, k := range rest {
		keys = append(keys, byKebab[k])
	}
	return keys
}
