package format

import (
	"testing"
)

func TestRenderHeader(t *testing.T) {
	values := HeaderValues{Destination: "_colors.scss", Platform: "scss", Format: Variables, Tokens: 12, Version: "1.0.0"}

	tests := []struct {
		text string
		want string
	}{
		{DefaultHeader, "Do not edit directly"},
		{"{{ .Destination }} for {{ .Platform | upper }}", "_colors.scss for SCSS"},
		{"{{ .Tokens }} tokens, {{ .Format }}\n", "12 tokens, css/variables"},
		{"  ", ""},
	}

	for _, tt := range tests {
		got, err := RenderHeader(tt.text, values)
		if err != nil {
			t.Errorf("RenderHeader(%q) error = %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RenderHeader(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRenderHeader_Errors(t *testing.T) {
	for _, text := range []string{"{{ .Destination }", "{{ .Missing }}"} {
		if _, err := RenderHeader(text, HeaderValues{}); err == nil {
			t.Errorf("RenderHeader(%q) expected error", text)
		}
	}
}

func TestComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Do not edit directly", "/**\n* Do not edit directly\n*/\n\n"},
		{"Generated\n\nby tokencss", "/**\n* Generated\n*\n* by tokencss\n*/\n\n"},
	}

	for _, tt := range tests {
		if got := comment(tt.in); got != tt.want {
			t.Errorf("comment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
