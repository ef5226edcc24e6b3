package analysis

import "doc-lab/domain"

// SentimentScore sums the valence of every recognized word in the text.
// Unknown words contribute nothing; the result is a single signed integer
// whose sign carries the polarity label.
func SentimentScore(text string) domain.Sentiment {
	score := 0
	for _, token := range Tokenize(text) {
		if value, ok := valence[normalizeWord(token)]; ok {
			score += value
		}
	}
	return domain.Sentiment{Score: score}
}
