package transform

import (
	"errors"
	"testing"
)

func TestSpacingRem(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"24px", "1.5rem"},
		{"24", "1.5rem"},
		{float64(24), "1.5rem"},
		{"24.9", "1.5rem"},
		{" 8 ", "0.5rem"},
		{"-8px", "-0.5rem"},
		{"0", "0rem"},
		{"0x10", "1rem"},
		{"12", "0.75rem"},
	}

	for _, tt := range tests {
		got, err := SpacingRem(tt.in)
		if err != nil {
			t.Errorf("SpacingRem(%v) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SpacingRem(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpacingRem_Malformed(t *testing.T) {
	for _, in := range []any{"", "px", "auto", nil, "-"} {
		if _, err := SpacingRem(in); !errors.Is(err, ErrMalformedValue) {
			t.Errorf("SpacingRem(%v) error = %v, want ErrMalformedValue", in, err)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{float64(1.5), "1.5"},
		{float64(400), "400"},
		{3, "3"},
		{true, "true"},
	}

	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF0000", "#ff0000"},
		{"#f00", "#ff0000"},
		{" #00ff00 ", "#00ff00"},
		{"#ff0000ff", "#ff0000"},
		{"#ff000080", "rgba(255, 0, 0, 0.5)"},
		{"#00000000", "rgba(0, 0, 0, 0)"},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)"},
		{"transparent", "transparent"},
	}

	for _, tt := range tests {
		got, err := CSSColor(tt.in)
		if err != nil {
			t.Errorf("CSSColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CSSColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
