package transform

import (
	"errors"
	"slices"
	"testing"

	"tokencss/common"
	"tokencss/token"
)

// scssTransforms is the explicit transform list of the default platform.
var scssTransforms = []string{SpacerRem, AttributeCTI, NameCTIKebab, TimeSeconds, ContentIcon, SizeRem, ColorCSS}

func TestRegistry_Pipeline(t *testing.T) {
	r := NewRegistry()

	t.Run("group", func(t *testing.T) {
		p, err := r.Pipeline(GroupSCSS, nil)
		if err != nil {
			t.Fatalf("Pipeline() error = %v", err)
		}
		if len(p) != 6 {
			t.Errorf("scss group has %d transforms, want 6", len(p))
		}
		for _, tr := range p {
			if tr.Name == SpacerRem {
				t.Error("spacer/rem is not part of scss group")
			}
		}
	})

	t.Run("explicit list takes precedence", func(t *testing.T) {
		p, err := r.Pipeline(GroupCSS, []string{SpacerRem})
		if err != nil {
			t.Fatalf("Pipeline() error = %v", err)
		}
		if len(p) != 1 || p[0].Name != SpacerRem {
			t.Errorf("Pipeline() = %v, want only spacer/rem", p)
		}
	})

	t.Run("unknown transform", func(t *testing.T) {
		if _, err := r.Pipeline("", []string{"color/hex8android"}); !errors.Is(err, ErrUnknownTransform) {
			t.Errorf("Pipeline() error = %v, want ErrUnknownTransform", err)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		if _, err := r.Pipeline("android", nil); err == nil {
			t.Error("expected error for unknown group")
		}
	})

	t.Run("nothing requested", func(t *testing.T) {
		if _, err := r.Pipeline("", nil); err == nil {
			t.Error("expected error when neither group nor transforms given")
		}
	})
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	upper := Transform{
		Name: "value/upper",
		Kind: common.TransformKindValue,
		Transformer: func(t *token.Token, _ Options) error {
			t.Value = "UPPER"
			return nil
		},
	}
	if err := r.Register(upper); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(upper); err == nil {
		t.Error("expected error registering the same name twice")
	}
	if err := r.Register(Transform{Name: "broken", Kind: common.TransformKind(42), Transformer: upper.Transformer}); err == nil {
		t.Error("expected error for invalid kind")
	}
	if err := r.Register(Transform{Name: "nothing"}); err == nil {
		t.Error("expected error for missing transformer")
	}
	if !slices.Contains(r.Names(), "value/upper") {
		t.Errorf("Names() = %v, missing value/upper", r.Names())
	}

	if err := r.RegisterGroup("custom", []string{NameCTIKebab, "value/upper"}); err != nil {
		t.Fatalf("RegisterGroup() error = %v", err)
	}
	if err := r.RegisterGroup("custom", nil); err == nil {
		t.Error("expected error registering the same group twice")
	}
	if err := r.RegisterGroup("bad", []string{"missing"}); !errors.Is(err, ErrUnknownTransform) {
		t.Errorf("RegisterGroup() error = %v, want ErrUnknownTransform", err)
	}

	p, err := r.Pipeline("custom", nil)
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	tok := &token.Token{Path: []string{"a"}, Value: "x"}
	if err := p.Apply(tok, Options{}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if tok.Value != "UPPER" || tok.Name != "a" {
		t.Errorf("Apply() gave %s = %v", tok.Name, tok.Value)
	}
}

func TestPipeline_Apply(t *testing.T) {
	p, err := NewRegistry().Pipeline(GroupSCSS, scssTransforms)
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	opts := Options{Prefix: "token"}

	tests := []struct {
		name      string
		path      []string
		typ       common.TokenType
		value     any
		wantName  string
		wantValue any
	}{
		{"color", []string{"color", "brand", "primaryRed"}, common.TokenTypeColor, "#FF0000", "token-color-brand-primary-red", "#ff0000"},
		{"color by category", []string{"color", "overlay"}, "", "#00000080", "token-color-overlay", "rgba(0, 0, 0, 0.5)"},
		{"spacing", []string{"spacing", "md"}, common.TokenTypeSpacing, "24px", "token-spacing-md", "1.5rem"},
		{"time", []string{"time", "fast"}, "", "200ms", "token-time-fast", "0.2s"},
		{"size", []string{"size", "sm"}, "", "0.75", "token-size-sm", "0.75rem"},
		{"icon", []string{"content", "icon", "star"}, "", "★", "token-content-icon-star", `'\2605'`},
		{"untouched", []string{"typography", "body"}, common.TokenTypeTypography, "x", "token-typography-body", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &token.Token{Path: tt.path, Type: tt.typ, Original: tt.value, Value: tt.value}
			if err := p.Apply(tok, opts); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if tok.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tok.Name, tt.wantName)
			}
			if tok.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tok.Value, tt.wantValue)
			}
			if tok.Attributes.Category != tt.path[0] || tok.Attributes.Type != tt.path[1] {
				t.Errorf("Attributes = %+v", tok.Attributes)
			}
		})
	}
}

func TestPipeline_ApplyError(t *testing.T) {
	p, err := NewRegistry().Pipeline("", []string{SpacerRem})
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	tok := &token.Token{Path: []string{"spacing", "auto"}, Type: common.TokenTypeSpacing, Value: "auto"}
	if err := p.Apply(tok, Options{}); !errors.Is(err, ErrMalformedValue) {
		t.Errorf("Apply() error = %v, want ErrMalformedValue", err)
	}
}

func TestNameSlug(t *testing.T) {
	p, err := NewRegistry().Pipeline("", []string{NameSlug})
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	tok := &token.Token{Path: []string{"Brand Colors", "Primary"}}
	if err := p.Apply(tok, Options{Prefix: "token"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if tok.Name != "token-brand-colors-primary" {
		t.Errorf("Name = %q, want token-brand-colors-primary", tok.Name)
	}
}

func TestTypographyPart(t *testing.T) {
	p, err := NewRegistry().Pipeline("", []string{TypographyPart})
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}

	tests := []struct {
		typ   common.TokenType
		value any
		want  any
	}{
		{common.TokenTypeFontFamilies, "Inter", "'Inter', sans-serif"},
		{common.TokenTypeFontWeights, "Bold", "700"},
		{common.TokenTypeFontSizes, "roundTo(24, 2)", "1.5rem"},
		{common.TokenTypeLineHeights, "150%", "1.5"},
		{common.TokenTypeLetterSpacing, "120%", "1.2em"},
		{common.TokenTypeParagraphSpacing, "0", "0"},
		{common.TokenTypeTextCase, "uppercase", "uppercase"},
		{common.TokenTypeTextDecoration, "underline", "underline"},
		{common.TokenTypeSpacing, "24px", "24px"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			tok := &token.Token{Path: []string{"x"}, Type: tt.typ, Value: tt.value}
			if err := p.Apply(tok, Options{}); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if tok.Value != tt.want {
				t.Errorf("Value = %v, want %v", tok.Value, tt.want)
			}
		})
	}

	tok := &token.Token{Path: []string{"x"}, Type: common.TokenTypeFontSizes, Value: "huge"}
	if err := p.Apply(tok, Options{}); !errors.Is(err, ErrMalformedValue) {
		t.Errorf("Apply() error = %v, want ErrMalformedValue", err)
	}
}
