package transform

import (
	"fmt"
	"strings"
)

// Property is a single CSS property produced from a typography sub-value.
type Property struct {
	Name  string
	Value string
}

// Typography sub-properties after kebab casing.
const (
	FontFamily       = "font-family"
	FontWeight       = "font-weight"
	LineHeight       = "line-height"
	FontSize         = "font-size"
	LetterSpacing    = "letter-spacing"
	ParagraphSpacing = "paragraph-spacing"
	ParagraphIndent  = "paragraph-indent"
	TextCase         = "text-case"
	TextTransform    = "text-transform"
	TextDecoration   = "text-decoration"
)

// fontWeights maps weight names used by design tools to CSS numeric weights.
var fontWeights = map[string]string{
	"Black":       "900",
	"Extra-bold":  "800",
	"Bold":        "700",
	"Semi-bold":   "600",
	"Medium":      "500",
	"Regular":     "400",
	"Light":       "300",
	"Extra-light": "200",
}

// FontWeightValue returns numeric CSS weight for a named one, unknown names are
// returned as is.
func FontWeightValue(name string) string {
	if w, ok := fontWeights[name]; ok {
		return w
	}
	return name
}

// TypographyProperty converts one entry of composite typography value. The
// key may be in camelCase (fontSize) or already kebab-cased. When the
// property must not appear in the output the second result is false.
func TypographyProperty(key string, value any) (Property, bool, error) {
	p := Property{Name: ToKebab(key), Value: Stringify(value)}

	switch p.Name {
	case TextCase:
		p.Name = TextTransform

	case LetterSpacing:
		if pct, ok := strings.CutSuffix(p.Value, "%"); ok {
			f, ok := parseNumber(pct)
			if !ok {
				return p, false, fmt.Errorf("%w: %s %q", ErrMalformedValue, p.Name, p.Value)
			}
			p.Value = FormatNumber(f/100) + "em"
		}

	case TextDecoration:
		return p, false, nil

	case FontFamily:
		p.Value = "'" + p.Value + "', sans-serif"

	case FontSize:
		v, err := FontSizeRem(value)
		if err != nil {
			return p, false, err
		}
		p.Value = v

	case LineHeight:
		if pct, ok := strings.CutSuffix(p.Value, "%"); ok {
			f, ok := parseNumber(pct)
			if !ok {
				return p, false, fmt.Errorf("%w: %s %q", ErrMalformedValue, p.Name, p.Value)
			}
			p.Value = FormatNumber(f / 100)
		}
		if p.Value == "AUTO" {
			p.Value = "1"
		}

	case FontWeight:
		p.Value = FontWeightValue(p.Value)
	}
	return p, true, nil
}

// FontSizeRem converts font size in pixels into rem. Values containing
// roundTo(...) are evaluated as rounding expressions first. An expression
// whose rounding fails (zero, NaN or infinite operand) is malformed rather
// than a zero size.
func FontSizeRem(value any) (string, error) {
	var size float64
	switch v := value.(type) {
	case float64:
		size = v
	default:
		s := Stringify(value)
		if strings.Contains(s, roundToFunc) {
			e, err := ParseExpr(s)
			if err != nil {
				return "", fmt.Errorf("%w: %s: %w", ErrMalformedValue, FontSize, err)
			}
			f, ok := e.Eval()
			if !ok {
				return "", fmt.Errorf("%w: %s %q has no value", ErrMalformedValue, FontSize, s)
			}
			size = f
			break
		}
		f, ok := parseNumber(s)
		if !ok {
			return "", fmt.Errorf("%w: %s %q", ErrMalformedValue, FontSize, s)
		}
		size = f
	}
	return FormatNumber(size/remBase) + "rem", nil
}
