package token

import (
	"tokencss/utils/debug"
)

// String returns readable tree of all tokens with original and resolved
// values. It exists for the debug report only.
func (d *Dictionary) String() string {
	if d == nil {
		return "<nil Dictionary>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Tokens: %d", len(d.tokens))
	file := ""
	for _, t := range d.tokens {
		if t.FilePath != file {
			file = t.FilePath
			tw.Line(1, "File[%q]", file)
		}
		tw.Line(2, "Token[%q] type[%s]", t.Key(), t.Type)
		if t.Description != "" {
			tw.Value(3, "description", t.Description)
		}
		tw.Value(3, "original", t.Original)
		if t.IsReference() {
			tw.Value(3, "resolved", t.Value)
		}
	}
	return tw.String()
}
