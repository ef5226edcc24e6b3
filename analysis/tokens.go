// Package analysis runs the fixed battery of linguistic passes over an
// extracted document. Every pass is a pure function of its input: analyzing
// the same text twice yields byte-identical records.
package analysis

import (
	"strings"
	"unicode"
)

// Tokenize splits text into whitespace-delimited tokens. Word counting,
// tagging and sentiment all share this tokenization so that the numeric
// fields of a record stay consistent with each other.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// normalizeWord strips surrounding punctuation and lowercases the token.
// Inner characters are kept, so "don't" survives and "(great)" becomes "great".
func normalizeWord(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.ToLower(trimmed)
}

// stripEdges keeps the original casing while removing surrounding punctuation.
func stripEdges(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
