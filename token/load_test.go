package token

import (
	"strings"
	"testing"

	"tokencss/common"
)

const sampleDocument = `{
  "color": {
    "type": "color",
    "red": { "value": "#ff0000", "description": "Brand red" },
    "accent": { "value": "{color.red}" }
  },
  "size": {
    "$type": "spacing",
    "10": { "$value": "40px" },
    "2": { "$value": "8px" },
    "$description": "group metadata is skipped"
  },
  "typography": {
    "body": {
      "type": "typography",
      "value": { "fontFamily": "Inter", "fontSize": "16" }
    }
  },
  "stray": "ignored"
}`

func TestParse(t *testing.T) {
	tokens, err := Parse([]byte(sampleDocument), "base.tokens.json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []struct {
		key string
		typ common.TokenType
	}{
		{"color.accent", common.TokenTypeColor},
		{"color.red", common.TokenTypeColor},
		{"size.2", common.TokenTypeSpacing},
		{"size.10", common.TokenTypeSpacing},
		{"typography.body", common.TokenTypeTypography},
	}
	if len(tokens) != len(want) {
		keys := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			keys = append(keys, tok.Key())
		}
		t.Fatalf("Parse() returned %v, want %d tokens", keys, len(want))
	}
	for i, w := range want {
		if tokens[i].Key() != w.key || tokens[i].Type != w.typ {
			t.Errorf("token %d = %s (%s), want %s (%s)", i, tokens[i].Key(), tokens[i].Type, w.key, w.typ)
		}
		if tokens[i].FilePath != "base.tokens.json" {
			t.Errorf("token %d FilePath = %q", i, tokens[i].FilePath)
		}
	}

	red := tokens[1]
	if red.Description != "Brand red" {
		t.Errorf("Description = %q, want Brand red", red.Description)
	}
	if !tokens[0].IsReference() || red.IsReference() {
		t.Error("IsReference() mismatch")
	}

	body, ok := tokens[4].Value.(map[string]any)
	if !ok || body["fontFamily"] != "Inter" {
		t.Errorf("typography value = %v", tokens[4].Value)
	}
	// value must be a copy of original
	body["fontFamily"] = "Changed"
	if tokens[4].Original.(map[string]any)["fontFamily"] != "Inter" {
		t.Error("changing Value modified Original")
	}
}

func TestParse_BOM(t *testing.T) {
	utf8BOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a":{"value":"1"}}`)...)

	// UTF-16 LE with BOM
	utf16 := []byte{0xFF, 0xFE}
	for _, r := range `{"a":{"value":"1"}}` {
		utf16 = append(utf16, byte(r), 0)
	}

	for name, data := range map[string][]byte{"utf-8": utf8BOM, "utf-16le": utf16} {
		tokens, err := Parse(data, name)
		if err != nil {
			t.Errorf("%s: Parse() error = %v", name, err)
			continue
		}
		if len(tokens) != 1 || tokens[0].Value != "1" {
			t.Errorf("%s: unexpected tokens %v", name, tokens)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"not json", `{"a":`, "unable to decode"},
		{"trailing data", `{"a":{"value":1}} {}`, "trailing data"},
		{"array document", `[1, 2]`, "unable to decode"},
		{"root token", `{"value": "1"}`, "document root"},
		{"bad type", `{"a":{"type": 5, "value":"1"}}`, "type must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.tokens.json")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestToken_Clone(t *testing.T) {
	orig := &Token{
		Path:  []string{"typography", "body"},
		Value: map[string]any{"fontSize": "16", "list": []any{"a"}},
	}
	c := orig.Clone()
	c.Path[0] = "changed"
	c.Value.(map[string]any)["fontSize"] = "20"
	c.Value.(map[string]any)["list"].([]any)[0] = "b"

	if orig.Path[0] != "typography" {
		t.Error("Clone shares path")
	}
	v := orig.Value.(map[string]any)
	if v["fontSize"] != "16" || v["list"].([]any)[0] != "a" {
		t.Errorf("Clone shares value: %v", v)
	}
}
