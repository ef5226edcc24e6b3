package analysis

import (
	"log/slog"

	"doc-lab/domain"
)

type Analyzer struct {
	log *slog.Logger
}

func NewAnalyzer(log *slog.Logger) *Analyzer {
	return &Analyzer{log: log}
}

// Analyze runs the full battery over one extracted text. Heuristic stages
// (entities, topics, keywords) degrade to empty sequences instead of
// aborting the record; counting stages cannot fail.
func (a *Analyzer) Analyze(text, mimeType string) domain.Analysis {
	tokens := Tokenize(text)
	sentences := SplitSentences(text)

	var adjectives []string
	record := domain.Analysis{
		WordCount: len(tokens),
		Sentences: sentences,
		Sentiment: SentimentScore(text),
		Language:  DetectLanguage(text),
		MimeType:  mimeType,
	}

	a.degrade("postag", func() {
		record.Nouns, record.Verbs, adjectives = Tag(tokens)
	})
	a.degrade("entities", func() {
		record.People, record.Places, record.Organizations = Entities(sentences)
	})
	a.degrade("topics", func() {
		record.Topics = Topics(sentences)
	})
	a.degrade("keywords", func() {
		record.Keywords = Keywords(text, record.Nouns, adjectives)
	})

	return record
}

// degrade runs one heuristic stage and contains its panics: the stage's
// output fields simply stay empty.
func (a *Analyzer) degrade(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("analysis stage degraded", "stage", stage, "panic", r)
		}
	}()
	fn()
}
