package internal

import (
	"strings"

	"github.com/kenshaw/snaker"
)

// reverseIndexRune finds the last rune r in s, returning -1 if not present.
func reverseIndexRune(s string, r rune) int {
	if s == "" {
		return -1
	}

	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}

	return -1
}

// PluralizeIdentifier pluralizes the last word of a snake_case identifier,
// returning it in snake_case.
func PluralizeIdentifier(in Inflector, s string) string {
	if i := reverseIndexRune(s, '_'); i != -1 {
		rs := []rune(s)
		return string(rs[:i]) + "_" + in.Pluralize(string(rs[i+1:]))
	}
	return in.Pluralize(s)
}

// SnakeToCamel converts the string to CamelCase
func SnakeToCamel(s string) string {
	return snaker.ForceCamelIdentifier(s)
}

// CamelToSnake converts the string to snake_case
func CamelToSnake(s string) string {
	return snaker.CamelToSnake(s)
}

// LowerFirstWord lower-cases the first word of a CamelCase identifier, so
// that a leading initialism is lowered as a whole: "APIKey" -> "apiKey".
func LowerFirstWord(s string) string {
	words := strings.Split(CamelToSnake(s), "_")
	if len(words) == 1 {
		return strings.ToLower(words[0])
	}
	return strings.ToLower(words[0]) + SnakeToCamel(strings.Join(words[1:], "_"))
}

// EscapePHPString escapes s for use inside a single-quoted PHP string.
func EscapePHPString(s string) string {
	return phpStringReplacer.Replace(s)
}

var phpStringReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
