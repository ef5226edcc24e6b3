// Package responder synthesizes the final answer string from the detected
// intent, the analysis record and the extracted text. Every strategy is a
// pure template over the record; nothing here touches the outside world.
package responder

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"doc-lab/domain"

	"github.com/samber/lo"
)

const noFactsMessage = "I couldn't identify specific factual statements in this document."

// copular verb forms approximating declarative statements
var copularForms = []string{"is", "are", "was", "were"}

var genericQuestions = []string{
	"What are the main topics discussed in this document?",
	"What is the overall sentiment or tone of the content?",
	"Who are the key people or entities mentioned?",
	"What are the most important keywords?",
	"What action items or conclusions can be drawn?",
}

type Responder struct {
	log *slog.Logger
}

func NewResponder(log *slog.Logger) *Responder {
	return &Responder{log: log}
}

// Respond dispatches on the detected intent. Greeting carries no strategy of
// its own when a document is present and falls through to the contextual
// composition, like any unrecognized wording.
func (r *Responder) Respond(it domain.Intent, message, text string, record domain.Analysis) string {
	switch it {
	case domain.IntentSummary:
		return summarize(record)
	case domain.IntentKeywords:
		return listKeywords(record)
	case domain.IntentSentiment:
		return describeSentiment(record)
	case domain.IntentQuestions:
		return probeQuestions()
	case domain.IntentFacts:
		return listFacts(record)
	case domain.IntentTranslation:
		return translationNotice(record)
	case domain.IntentStatistics:
		return statistics(record)
	default:
		return r.contextual(message, record)
	}
}

func summarize(record domain.Analysis) string {
	topics := strings.Join(lo.Slice(record.Topics, 0, 3), ", ")

	if record.WordCount < 50 || len(record.Sentences) == 0 {
		return fmt.Sprintf("This is a short document with %d words. It appears to discuss: %s.",
			record.WordCount, topics)
	}

	count := int(math.Ceil(float64(len(record.Sentences)) * 0.3))
	if count > 3 {
		count = 3
	}
	if count < 1 {
		count = 1
	}
	summary := strings.Join(record.Sentences[:count], " ")

	return fmt.Sprintf("This document contains %d words and appears to focus on: %s. "+
		"Here's a summary based on the opening content:\n\n%s",
		record.WordCount, topics, summary)
}

func listKeywords(record domain.Analysis) string {
	return fmt.Sprintf("Key terms in this document: %s",
		strings.Join(lo.Slice(record.Keywords, 0, 10), ", "))
}

func describeSentiment(record domain.Analysis) string {
	return fmt.Sprintf("The overall sentiment of this document is %s (score: %d).",
		record.Sentiment.Label(), record.Sentiment.Score)
}

func probeQuestions() string {
	return "Here are some questions this document might help answer:\n" +
		bulleted(genericQuestions)
}

func listFacts(record domain.Analysis) string {
	var facts []string
	for _, sentence := range record.Sentences {
		lower := strings.ToLower(sentence)
		for _, form := range copularForms {
			if strings.Contains(lower, form) {
				facts = append(facts, sentence)
				break
			}
		}
	}
	if len(facts) == 0 {
		return noFactsMessage
	}
	return "Here are some key facts I found:\n" + bulleted(lo.Slice(facts, 0, 5))
}

func translationNotice(record domain.Analysis) string {
	language := record.Language
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf("I can help with basic text analysis, but I don't currently "+
		"support translation. The document appears to be in %s.", language)
}

func statistics(record domain.Analysis) string {
	sentenceCount := len(record.Sentences)
	average := 0
	if sentenceCount > 0 {
		average = int(math.Round(float64(record.WordCount) / float64(sentenceCount)))
	}

	return fmt.Sprintf(`Document Statistics:
• Word count: %d
• Sentences: %d
• Average words per sentence: %d
• Nouns identified: %d
• Verbs identified: %d
• Sentiment score: %d (%s)
• Language: %s`,
		record.WordCount, sentenceCount, average,
		len(record.Nouns), len(record.Verbs),
		record.Sentiment.Score, record.Sentiment.Label(),
		record.Language)
}

// contextual composes the general response: key terms, main topics, then up
// to three sentences quoted verbatim when they mention any of those terms.
func (r *Responder) contextual(message string, record domain.Analysis) string {
	keywords := lo.Slice(record.Keywords, 0, 5)
	topics := lo.Slice(record.Topics, 0, 3)

	var b strings.Builder
	b.WriteString("Based on my analysis of your document, ")
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "the key terms appear to be: %s. ", strings.Join(keywords, ", "))
	}
	if len(topics) > 0 {
		fmt.Fprintf(&b, "The main topics are: %s. ", strings.Join(topics, ", "))
	}
	fmt.Fprintf(&b, "\n\nRegarding your question: \"%s\"\n", message)

	passages := r.relevantPassages(record.Sentences, append(append([]string{}, keywords...), topics...))
	if len(passages) == 0 {
		b.WriteString("I can provide general analysis but couldn't find specific content directly related to your question.")
		return b.String()
	}
	b.WriteString("I found these relevant passages:\n")
	b.WriteString(bulleted(passages))
	return b.String()
}

func (r *Responder) relevantPassages(sentences, patterns []string) []string {
	matcher, err := newPassageMatcher(patterns)
	if err != nil {
		r.log.Debug("passage matcher unavailable", "error", err)
		return nil
	}

	var relevant []string
	for _, sentence := range sentences {
		if matcher.Matches(sentence) {
			relevant = append(relevant, sentence)
			if len(relevant) == 3 {
				break
			}
		}
	}
	return relevant
}

func bulleted(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "• " + line
	}
	return strings.Join(out, "\n")
}
