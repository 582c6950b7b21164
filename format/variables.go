package format

import (
	"fmt"
	"strings"

	"tokencss/token"
	"tokencss/transform"
)

// variables writes one custom property per token.
func variables(tokens []*token.Token, opts Options) (string, error) {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		v, err := variableValue(t, opts)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("  --%s: %s;", t.Name, v))
	}
	return root(opts.Header, []string{strings.Join(lines, "\n")}), nil
}

func variableValue(t *token.Token, opts Options) (string, error) {
	if opts.OutputReferences && opts.Tokens != nil {
		if orig, ok := t.OriginalString(); ok && t.IsReference() {
			return token.ReplaceReferences(orig, func(ref string) string {
				if rt, ok := opts.Tokens.Lookup(ref); ok {
					return "var(--" + rt.Name + ")"
				}
				return "{" + ref + "}"
			}), nil
		}
	}
	switch t.Value.(type) {
	case map[string]any, []any:
		return "", fmt.Errorf("token %s has composite value which cannot be a single variable", t.Key())
	}
	return transform.Stringify(t.Value), nil
}
