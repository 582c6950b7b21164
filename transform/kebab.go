package transform

import "strings"

// ToKebab converts PascalCase, camelCase or SCREAMING_CASE identifier into
// lowercase words joined by hyphens: "XMLHttpRequest" -> "xml-http-request",
// "fontSize" -> "font-size", "h1Title" -> "h1-title". Anything that is not an
// ASCII letter or digit only separates words. Empty input yields empty
// result.
func ToKebab(s string) string {
	if len(s) == 0 {
		return ""
	}
	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "-")
}

// splitWords scans s left to right. At every position it tries, in order:
//
//	an uppercase run of 2+ letters followed by a capitalized word or a word end
//	an optional capital, lowercase letters and trailing digits
//	a single capital
//	a run of digits
//
// and skips the byte when nothing matches.
func splitWords(s string) []string {
	var words []string
	for i := 0; i < len(s); {
		if n := matchAcronym(s, i); n > 0 {
			words = append(words, s[i:i+n])
			i += n
			continue
		}
		if n := matchWord(s, i); n > 0 {
			words = append(words, s[i:i+n])
			i += n
			continue
		}
		if isUpper(s[i]) {
			words = append(words, s[i:i+1])
			i++
			continue
		}
		if isDigit(s[i]) {
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			words = append(words, s[i:j])
			i = j
			continue
		}
		i++
	}
	return words
}

// matchAcronym returns length of the longest uppercase run starting at i
// (at least 2) which is followed either by an uppercase letter starting a
// lowercase word or by a word end.
func matchAcronym(s string, i int) int {
	end := i
	for end < len(s) && isUpper(s[end]) {
		end++
	}
	for k := end - i; k >= 2; k-- {
		next := i + k
		if next == len(s) || !isWordChar(s[next]) {
			return k
		}
		if isUpper(s[next]) && next+1 < len(s) && isLower(s[next+1]) {
			return k
		}
	}
	return 0
}

func matchWord(s string, i int) int {
	j := i
	if isUpper(s[j]) {
		if j+1 >= len(s) || !isLower(s[j+1]) {
			return 0
		}
		j++
	}
	if !isLower(s[j]) {
		return 0
	}
	for j < len(s) && isLower(s[j]) {
		j++
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j - i
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Underscore is not a word character here, SCREAMING_CASE splits on it.
func isWordChar(c byte) bool { return isUpper(c) || isLower(c) || isDigit(c) }
