package format

import (
	"fmt"
	"strings"

	"tokencss/token"
	"tokencss/transform"
)

// aliasProperties are the typography sub-properties an alias points to.
var aliasProperties = []string{
	transform.FontFamily,
	transform.FontWeight,
	transform.LineHeight,
	transform.FontSize,
	transform.LetterSpacing,
	transform.ParagraphSpacing,
	transform.TextTransform,
}

// other writes aliases for tokens referring to typography tokens: every
// typography sub-property becomes var() pointing to the variable generated
// for the referenced token. Tokens which do not refer to typography produce
// nothing.
func other(tokens []*token.Token, opts Options) (string, error) {
	blocks := make([]string, 0, len(tokens))
	for _, t := range tokens {
		orig, ok := t.OriginalString()
		if !ok || !strings.Contains(orig, "typography") {
			continue
		}
		target := aliasTarget(orig, opts.Prefix)

		var b strings.Builder
		for _, p := range aliasProperties {
			fmt.Fprintf(&b, "  --%s-%s: var(%s-%s);\n", t.Name, p, target, p)
		}
		blocks = append(blocks, b.String())
	}
	return root(opts.Header, blocks), nil
}

// aliasTarget derives variable name of the referenced typography token from
// reference text: "{typography.body}" with prefix "token" is
// "--token-typography-body".
func aliasTarget(ref, prefix string) string {
	ref = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(ref), "{"), "}")
	parts := make([]string, 0, 2)
	for _, s := range []string{prefix, ref} {
		if k := transform.ToKebab(s); k != "" {
			parts = append(parts, k)
		}
	}
	return "--" + strings.Join(parts, "-")
}
