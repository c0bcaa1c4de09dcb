package skills

import (
	"strings"
	"unicode"
)

// isDelimiter matches commas and any Unicode whitespace, including NBSP,
// the Zs spaces, line/paragraph separators and the BOM.
func isDelimiter(r rune) bool {
	return r == ',' || r == '\uFEFF' || unicode.IsSpace(r)
}

// Tokenize splits free-text input on runs of commas and whitespace.
// Empty tokens are dropped; order and duplicates are kept.
func Tokenize(query string) []string {
	tokens := strings.FieldsFunc(query, isDelimiter)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
