package css_test

import (
	"testing"

	"go.uber.org/zap"

	"tokencss/css"
)

func TestParser_RootVariables(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	input := []byte(`/**
* Do not edit directly
*/

:root {
  --token-color-primary: #ff0000;
  --token-color-accent: var(--token-color-primary);
}
`)
	sheet := p.Parse(input, "colors.css")

	if len(sheet.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", sheet.Warnings)
	}
	rules := sheet.RulesBySelector(":root")
	if len(rules) != 1 {
		t.Fatalf("expected 1 :root rule, got %d", len(rules))
	}

	decls := rules[0].Declarations
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Property != "--token-color-primary" || decls[0].Value != "#ff0000" {
		t.Errorf("unexpected first declaration %+v", decls[0])
	}
	refs := decls[1].References()
	if len(refs) != 1 || refs[0] != "--token-color-primary" {
		t.Errorf("expected reference to --token-color-primary, got %v", refs)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`h1, h2 { margin: 0; }`))

	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	for i, want := range []string{"h1", "h2"} {
		if sheet.Rules[i].Selector != want {
			t.Errorf("rule %d: expected selector %q, got %q", i, want, sheet.Rules[i].Selector)
		}
		if sheet.Rules[i].Declarations[0].IsCustom() {
			t.Errorf("rule %d: margin reported as custom property", i)
		}
	}
}

func TestParser_SkipsAtRules(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	input := []byte(`@media screen { :root { --a: 1px; } }
:root { --b: 2px; }`)
	sheet := p.Parse(input)

	if len(sheet.Warnings) == 0 {
		t.Error("expected warning about skipped @media block")
	}
	props := sheet.CustomProperties()
	if len(props) != 1 || props[0].Property != "--b" {
		t.Errorf("expected only --b, got %+v", props)
	}
}

func TestDeclaration_References(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"1px", nil},
		{"var(--a)", []string{"--a"}},
		{"var( --a , 10px)", []string{"--a"}},
		{"calc(var(--a) + var(--b-2))", []string{"--a", "--b-2"}},
	}

	for _, tt := range tests {
		got := css.Declaration{Property: "--x", Value: tt.value}.References()
		if len(got) != len(tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.value, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: expected %v, got %v", tt.value, tt.want, got)
			}
		}
	}
}
