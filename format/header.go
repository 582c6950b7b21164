package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// DefaultHeader is used when configuration does not provide one.
const DefaultHeader = "Do not edit directly"

// HeaderValues is a struct that holds variables we make available for
// header template expansion.
type HeaderValues struct {
	Destination string
	Platform    string
	Format      string
	Tokens      int
	Version     string
}

// RenderHeader expands header template.
func RenderHeader(text string, values HeaderValues) (string, error) {
	tmpl, err := template.New("header").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("unable to parse header template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand header template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// comment turns header text into a comment block followed by an empty line.
func comment(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("/**\n")
	for line := range strings.SplitSeq(text, "\n") {
		b.WriteString(strings.TrimRight("* "+line, " \t\r"))
		b.WriteString("\n")
	}
	b.WriteString("*/\n\n")
	return b.String()
}
