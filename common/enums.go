// Package common keeps enumerations shared between token loading, transforms
// and formats so none of them has to import the others just for a type.
package common

//go:generate go tool go-enum --marshal --names

// Token type as exported by the design tool. Unknown types are kept verbatim,
// so the list below is what the rest of the program knows how to treat.
// ENUM(color, spacing, typography, other, sizing, dimension, borderRadius, borderWidth, boxShadow, opacity, fontFamilies, fontWeights, fontSizes, lineHeights, letterSpacing, paragraphSpacing, textCase, textDecoration, composition, border)
type TokenType string

// IsTypographyPart reports whether token carries a single typography field
// rather than the composite typography value.
func (t TokenType) IsTypographyPart() bool {
	switch t {
	case TokenTypeFontFamilies, TokenTypeFontWeights, TokenTypeFontSizes, TokenTypeLineHeights,
		TokenTypeLetterSpacing, TokenTypeParagraphSpacing, TokenTypeTextCase, TokenTypeTextDecoration:
		return true
	}
	return false
}

// Rounding direction requested in roundTo expressions.
// ENUM(round, floor, ceil)
type RoundDirection int

// What part of a token a transform rewrites.
// ENUM(value, name, attribute)
type TransformKind int
