// Package debug renders indented human readable dumps for the debug report.
package debug

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Value writes labeled value. Strings are quoted so leading and trailing
// spaces are visible, objects and lists are expanded one entry per line with
// object keys in natural order.
func (tw TreeWriter) Value(depth int, label string, v any) {
	tw.indent(depth)
	tw.w.WriteString(label)
	switch x := v.(type) {
	case map[string]any:
		fmt.Fprintf(tw.w, ": {%d}\n", len(x))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Value(depth+1, k, x[k])
		}
	case []any:
		fmt.Fprintf(tw.w, ": [%d]\n", len(x))
		for i, e := range x {
			tw.Value(depth+1, strconv.Itoa(i), e)
		}
	case string:
		tw.w.WriteString(": ")
		tw.w.WriteString(encodeText(x))
		tw.w.WriteByte('\n')
	case nil:
		tw.w.WriteString(": <nil>\n")
	default:
		fmt.Fprintf(tw.w, ": %v\n", x)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
