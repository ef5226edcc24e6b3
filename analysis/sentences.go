package analysis

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period without closing a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "no": {}, "fig": {},
}

// SplitSentences segments text into sentences, preserving the original
// sentence text verbatim so later stages can quote it. A terminator
// (. ! ?) followed by whitespace or the end of input closes a sentence,
// except after a known abbreviation.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// run of terminators ("..." / "?!") closes on its last rune only
		if i+1 < len(runes) && isTerminator(runes[i+1]) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && endsWithAbbreviation(current.String()) {
			continue
		}
		flush()
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func endsWithAbbreviation(chunk string) bool {
	chunk = strings.TrimSuffix(chunk, ".")
	fields := strings.Fields(chunk)
	if len(fields) == 0 {
		return false
	}
	_, ok := abbreviations[strings.ToLower(fields[len(fields)-1])]
	return ok
}
