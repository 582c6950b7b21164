package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"tokencss/css"
)

func TestCheck_Clean(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	res := p.Check([]css.Source{
		{Name: "_colors.scss", Data: []byte(":root {\n  --token-color-red: #ff0000;\n}\n")},
		{Name: "_other.scss", Data: []byte(":root {\n  --token-link-color: var(--token-color-red);\n}\n")},
	})

	if len(res.Problems) != 0 {
		t.Fatalf("unexpected problems: %v", res.Problems)
	}
	if res.Declared != 2 {
		t.Errorf("expected 2 declared properties, got %d", res.Declared)
	}
	if res.References != 1 {
		t.Errorf("expected 1 reference, got %d", res.References)
	}
}

func TestCheck_Problems(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	res := p.Check([]css.Source{
		{Name: "a.css", Data: []byte(":root { --x: 1px; --y: var(--missing); }")},
		{Name: "b.css", Data: []byte(":root { --x: 2px; }")},
	})

	if len(res.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %v", res.Problems)
	}

	var dup, undefined bool
	for _, pr := range res.Problems {
		switch {
		case pr.File == "b.css" && pr.Property == "--x" && strings.Contains(pr.Message, "a.css"):
			dup = true
		case pr.File == "a.css" && pr.Property == "--y" && strings.Contains(pr.Message, "--missing"):
			undefined = true
		}
	}
	if !dup {
		t.Errorf("duplicate declaration not reported: %v", res.Problems)
	}
	if !undefined {
		t.Errorf("undefined reference not reported: %v", res.Problems)
	}
}

func TestProblem_String(t *testing.T) {
	pr := css.Problem{File: "a.css", Property: "--y", Message: "refers to undefined --z"}
	if got, want := pr.String(), "a.css: --y: refers to undefined --z"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	pr.Property = ""
	if got, want := pr.String(), "a.css: refers to undefined --z"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
