package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedValue is returned when a numeric rule meets a value it cannot
// read as a number.
var ErrMalformedValue = errors.New("malformed token value")

// remBase is the root font size in pixels all rem conversions assume.
const remBase = 16

// Stringify renders scalar token value the way it appears in a stylesheet.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return FormatNumber(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

// SpacingRem converts spacing value in pixels into rem. Only the leading
// integer is used, "24px" and "24.9" are both 24 and become "1.5rem".
func SpacingRem(v any) (string, error) {
	n, ok := parseIntPrefix(Stringify(v))
	if !ok {
		return "", fmt.Errorf("%w: spacing %q", ErrMalformedValue, Stringify(v))
	}
	return FormatNumber(float64(n)/remBase) + "rem", nil
}

// parseIntPrefix reads optional whitespace, sign and the longest run of
// decimal digits (or hex digits after 0x) ignoring whatever follows.
func parseIntPrefix(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

// parseNumber accepts plain numbers and pixel values.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
