package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gosimple/slug"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tokencss/common"
	"tokencss/token"
)

// Names of built-in transforms.
const (
	AttributeCTI   = "attribute/cti"
	NameCTIKebab   = "name/cti/kebab"
	NameSlug       = "name/slug"
	TimeSeconds    = "time/seconds"
	ContentIcon    = "content/icon"
	SizeRem        = "size/rem"
	ColorCSS       = "color/css"
	SpacerRem      = "spacer/rem"
	TypographyPart = "typography/part"
)

// typographyParts maps single field typography token types to the
// sub-property their value is.
var typographyParts = map[common.TokenType]string{
	common.TokenTypeFontFamilies:     FontFamily,
	common.TokenTypeFontWeights:      FontWeight,
	common.TokenTypeFontSizes:        FontSize,
	common.TokenTypeLineHeights:      LineHeight,
	common.TokenTypeLetterSpacing:    LetterSpacing,
	common.TokenTypeParagraphSpacing: ParagraphSpacing,
	common.TokenTypeTextCase:         TextCase,
	common.TokenTypeTextDecoration:   TextDecoration,
}

func builtins() []Transform {
	return []Transform{
		{
			Name: AttributeCTI,
			Kind: common.TransformKindAttribute,
			Transformer: func(t *token.Token, _ Options) error {
				parts := []*string{&t.Attributes.Category, &t.Attributes.Type, &t.Attributes.Item, &t.Attributes.Subitem, &t.Attributes.State}
				for i, p := range parts {
					if i < len(t.Path) && *p == "" {
						*p = t.Path[i]
					}
				}
				return nil
			},
		},
		{
			Name: NameCTIKebab,
			Kind: common.TransformKindName,
			Transformer: func(t *token.Token, opts Options) error {
				words := make([]string, 0, len(t.Path)+1)
				for _, s := range append([]string{opts.Prefix}, t.Path...) {
					if k := ToKebab(s); k != "" {
						words = append(words, k)
					}
				}
				t.Name = strings.Join(words, "-")
				return nil
			},
		},
		{
			Name: NameSlug,
			Kind: common.TransformKindName,
			Transformer: func(t *token.Token, opts Options) error {
				parts := t.Path
				if opts.Prefix != "" {
					parts = append([]string{opts.Prefix}, parts...)
				}
				t.Name = slug.Make(strings.Join(parts, "-"))
				return nil
			},
		},
		{
			Name:    TimeSeconds,
			Kind:    common.TransformKindValue,
			Matcher: categoryIs("time"),
			Transformer: func(t *token.Token, _ Options) error {
				f, ok := parseNumber(strings.TrimSuffix(Stringify(t.Value), "ms"))
				if !ok {
					return fmt.Errorf("%w: time %q", ErrMalformedValue, Stringify(t.Value))
				}
				t.Value = FormatNumber(f/1000) + "s"
				return nil
			},
		},
		{
			Name: ContentIcon,
			Kind: common.TransformKindValue,
			Matcher: func(t *token.Token) bool {
				return t.Attributes.Category == "content" && t.Attributes.Type == "icon"
			},
			Transformer: func(t *token.Token, _ Options) error {
				t.Value = cssIcon(Stringify(t.Value))
				return nil
			},
		},
		{
			Name:    SizeRem,
			Kind:    common.TransformKindValue,
			Matcher: categoryIs("size"),
			Transformer: func(t *token.Token, _ Options) error {
				f, ok := parseNumber(Stringify(t.Value))
				if !ok {
					return fmt.Errorf("%w: size %q", ErrMalformedValue, Stringify(t.Value))
				}
				t.Value = FormatNumber(f) + "rem"
				return nil
			},
		},
		{
			Name: ColorCSS,
			Kind: common.TransformKindValue,
			Matcher: func(t *token.Token) bool {
				return t.Type == common.TokenTypeColor || t.Attributes.Category == "color"
			},
			Transformer: func(t *token.Token, _ Options) error {
				s, ok := t.Value.(string)
				if !ok {
					return nil
				}
				c, err := CSSColor(s)
				if err != nil {
					return err
				}
				t.Value = c
				return nil
			},
		},
		{
			Name: TypographyPart,
			Kind: common.TransformKindValue,
			Matcher: func(t *token.Token) bool {
				return t.Type.IsTypographyPart()
			},
			Transformer: func(t *token.Token, _ Options) error {
				p, emit, err := TypographyProperty(typographyParts[t.Type], t.Value)
				if err != nil {
					return err
				}
				// text decoration has no stylesheet form, value is kept
				if emit {
					t.Value = p.Value
				}
				return nil
			},
		},
		{
			Name: SpacerRem,
			Kind: common.TransformKindValue,
			Matcher: func(t *token.Token) bool {
				return t.Type == common.TokenTypeSpacing
			},
			Transformer: func(t *token.Token, _ Options) error {
				v, err := SpacingRem(t.Value)
				if err != nil {
					return err
				}
				t.Value = v
				return nil
			},
		},
	}
}

func categoryIs(category string) func(*token.Token) bool {
	return func(t *token.Token) bool {
		return t.Attributes.Category == category
	}
}

// cssIcon escapes every non ASCII character as CSS hex escape and quotes
// the result for use in a content property.
func cssIcon(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r > 0x7f {
			b.WriteString(`\` + strconv.FormatInt(int64(r), 16))
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// CSSColor normalizes hex colors: opaque ones become lowercase 6 digit hex,
// translucent #rrggbbaa become rgba(). Anything else (rgb(), hsl(), named
// colors) passes unchanged.
func CSSColor(s string) (string, error) {
	raw := strings.TrimSpace(s)
	hex := strings.TrimPrefix(raw, "#")

	if govalidator.IsHexcolor(raw) {
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return "", fmt.Errorf("%w: color %q: %w", ErrMalformedValue, s, err)
		}
		return c.Hex(), nil
	}

	if strings.HasPrefix(raw, "#") && len(hex) == 8 && govalidator.IsHexadecimal(hex) {
		c, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return "", fmt.Errorf("%w: color %q: %w", ErrMalformedValue, s, err)
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: color %q: %w", ErrMalformedValue, s, err)
		}
		if a == 0xff {
			return c.Hex(), nil
		}
		alpha, _ := RoundTo(float64(a)/255, 2, common.RoundDirectionRound, 0)
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatNumber(alpha)), nil
	}
	return raw, nil
}
