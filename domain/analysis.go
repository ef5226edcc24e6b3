// Package domain contains core concepts of the document chat engine.
// This file defines the analysis record produced for one document.
// Records are immutable and derived deterministically from the text.
package domain

const (
	// MaxTopics caps the deduplicated topic list of a record.
	MaxTopics = 10
	// MaxKeywords caps the deduplicated keyword list of a record.
	MaxKeywords = 15
)

// Sentiment holds the lexicon-based polarity score of a document.
type Sentiment struct {
	Score int `json:"score"`
}

// Label derives the polarity label from the sign of the score.
func (s Sentiment) Label() string {
	switch {
	case s.Score > 0:
		return "positive"
	case s.Score < 0:
		return "negative"
	default:
		return "neutral"
	}
}

// Analysis is the structured output of the content analyzer for one document.
// Recomputing it from the same text yields an identical record.
type Analysis struct {
	WordCount     int       `json:"word_count"`
	Sentences     []string  `json:"sentences"`
	Nouns         []string  `json:"nouns"`
	Verbs         []string  `json:"verbs"`
	People        []string  `json:"people"`
	Places        []string  `json:"places"`
	Organizations []string  `json:"organizations"`
	Topics        []string  `json:"topics"`
	Keywords      []string  `json:"keywords"`
	Sentiment     Sentiment `json:"sentiment"`
	Language      string    `json:"language"`
	MimeType      string    `json:"mime_type"`
}
