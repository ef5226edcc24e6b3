package responder

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"doc-lab/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newResponder() *Responder {
	return NewResponder(logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestRespond_Summary_ShortDocument(t *testing.T) {
	record := domain.Analysis{
		WordCount: 12,
		Sentences: []string{"Acme Corp shipped.", "Everyone cheered loudly."},
		Topics:    []string{"Acme Corp", "Berlin", "John Smith", "ignored fourth"},
	}

	reply := newResponder().Respond(domain.IntentSummary, "summary please", "", record)

	require.Equal(t,
		"This is a short document with 12 words. It appears to discuss: Acme Corp, Berlin, John Smith.",
		reply)
}

func TestRespond_Summary_LongDocument(t *testing.T) {
	req := require.New(t)

	sentences := make([]string, 10)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Sentence number %d.", i)
	}
	record := domain.Analysis{
		WordCount: 200,
		Sentences: sentences,
		Topics:    []string{"Alpha", "Beta"},
	}

	reply := newResponder().Respond(domain.IntentSummary, "summarize", "", record)

	// ceil(10 * 0.3) = 3 leading sentences
	req.Contains(reply, "This document contains 200 words and appears to focus on: Alpha, Beta.")
	req.Contains(reply, "Sentence number 0. Sentence number 1. Sentence number 2.")
	req.NotContains(reply, "Sentence number 3.")
}

func TestRespond_Summary_LeadingShareBounds(t *testing.T) {
	tests := []struct {
		sentences int
		expected  int
	}{
		{1, 1},  // minimum one sentence
		{4, 2},  // ceil(1.2)
		{7, 3},  // ceil(2.1)
		{50, 3}, // capped at three
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d sentences", tt.sentences), func(t *testing.T) {
			sentences := make([]string, tt.sentences)
			for i := range sentences {
				sentences[i] = fmt.Sprintf("Item %d.", i)
			}
			reply := newResponder().Respond(domain.IntentSummary, "overview", "",
				domain.Analysis{WordCount: 100, Sentences: sentences})

			require.Equal(t, tt.expected, strings.Count(reply, "Item "))
		})
	}
}

func TestRespond_Keywords(t *testing.T) {
	keywords := make([]string, 14)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("kw%c", 'a'+i)
	}

	reply := newResponder().Respond(domain.IntentKeywords, "keywords", "",
		domain.Analysis{Keywords: keywords})

	require.Equal(t,
		"Key terms in this document: kwa, kwb, kwc, kwd, kwe, kwf, kwg, kwh, kwi, kwj",
		reply)
}

func TestRespond_Sentiment(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{"Positive", 7, "The overall sentiment of this document is positive (score: 7)."},
		{"Negative", -4, "The overall sentiment of this document is negative (score: -4)."},
		{"Neutral", 0, "The overall sentiment of this document is neutral (score: 0)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := newResponder().Respond(domain.IntentSentiment, "sentiment?", "",
				domain.Analysis{Sentiment: domain.Sentiment{Score: tt.score}})
			require.Equal(t, tt.expected, reply)
		})
	}
}

func TestRespond_Questions_FixedList(t *testing.T) {
	req := require.New(t)

	reply := newResponder().Respond(domain.IntentQuestions, "ask me", "", domain.Analysis{})

	req.Contains(reply, "Here are some questions this document might help answer:")
	req.Equal(5, strings.Count(reply, "• "))
	req.Contains(reply, "• What are the main topics discussed in this document?")
}

func TestRespond_Facts(t *testing.T) {
	record := domain.Analysis{
		Sentences: []string{
			"The sky was blue.",
			"Run along now!",
			"Taxes are due in April.",
		},
	}

	reply := newResponder().Respond(domain.IntentFacts, "facts", "", record)

	req := require.New(t)
	req.Contains(reply, "Here are some key facts I found:")
	req.Contains(reply, "• The sky was blue.")
	req.Contains(reply, "• Taxes are due in April.")
	req.NotContains(reply, "Run along now!")
}

func TestRespond_Facts_CapAtFive(t *testing.T) {
	sentences := make([]string, 8)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Item %d is fine.", i)
	}

	reply := newResponder().Respond(domain.IntentFacts, "facts", "",
		domain.Analysis{Sentences: sentences})

	require.Equal(t, 5, strings.Count(reply, "• "))
}

// Without copular forms the fixed fallback is returned, never an empty list.
func TestRespond_Facts_NoneFound(t *testing.T) {
	record := domain.Analysis{
		Sentences: []string{"Run along now!", "Onward we go."},
	}

	reply := newResponder().Respond(domain.IntentFacts, "facts", "", record)

	require.Equal(t, noFactsMessage, reply)
}

func TestRespond_Translation(t *testing.T) {
	req := require.New(t)

	reply := newResponder().Respond(domain.IntentTranslation, "translate", "",
		domain.Analysis{Language: "French"})
	req.Equal("I can help with basic text analysis, but I don't currently support translation. The document appears to be in French.", reply)

	// missing language degrades to the English assumption
	reply = newResponder().Respond(domain.IntentTranslation, "translate", "", domain.Analysis{})
	req.Contains(reply, "appears to be in English.")
}

func TestRespond_Statistics(t *testing.T) {
	record := domain.Analysis{
		WordCount: 103,
		Sentences: make([]string, 10),
		Nouns:     make([]string, 31),
		Verbs:     make([]string, 12),
		Sentiment: domain.Sentiment{Score: -3},
		Language:  "English",
	}

	reply := newResponder().Respond(domain.IntentStatistics, "statistics", "", record)

	req := require.New(t)
	req.Contains(reply, "• Word count: 103")
	req.Contains(reply, "• Sentences: 10")
	// round(103 / 10) = 10
	req.Contains(reply, "• Average words per sentence: 10")
	req.Contains(reply, "• Nouns identified: 31")
	req.Contains(reply, "• Verbs identified: 12")
	req.Contains(reply, "• Sentiment score: -3 (negative)")
	req.Contains(reply, "• Language: English")
}

func TestRespond_Statistics_NoSentences(t *testing.T) {
	reply := newResponder().Respond(domain.IntentStatistics, "statistics", "",
		domain.Analysis{WordCount: 3})

	require.Contains(t, reply, "• Average words per sentence: 0")
}

func TestRespond_General_WithPassages(t *testing.T) {
	record := domain.Analysis{
		Keywords: []string{"Revenue", "growth"},
		Topics:   []string{"Acme Corp"},
		Sentences: []string{
			"The weather stayed calm.",
			"Revenue doubled last year.",
			"Acme Corp opened a new office.",
			"Nothing else of note.",
		},
	}

	reply := newResponder().Respond(domain.IntentGeneral, "how did the business do?", "", record)

	req := require.New(t)
	req.Contains(reply, "the key terms appear to be: Revenue, growth.")
	req.Contains(reply, "The main topics are: Acme Corp.")
	req.Contains(reply, "Regarding your question: \"how did the business do?\"")
	req.Contains(reply, "I found these relevant passages:")
	req.Contains(reply, "• Revenue doubled last year.")
	req.Contains(reply, "• Acme Corp opened a new office.")
	req.NotContains(reply, "The weather stayed calm.")
}

func TestRespond_General_PassagesCapAtThree(t *testing.T) {
	sentences := make([]string, 6)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Budget line %d.", i)
	}

	reply := newResponder().Respond(domain.IntentGeneral, "tell me", "",
		domain.Analysis{Keywords: []string{"budget"}, Sentences: sentences})

	require.Equal(t, 3, strings.Count(reply, "• "))
}

func TestRespond_General_NoMatchFallback(t *testing.T) {
	record := domain.Analysis{
		Keywords:  []string{"inventory"},
		Sentences: []string{"The weather stayed calm."},
	}

	reply := newResponder().Respond(domain.IntentGeneral, "anything?", "", record)

	require.Contains(t, reply,
		"I can provide general analysis but couldn't find specific content directly related to your question.")
}

func TestRespond_General_NoKeywordsNoTopics(t *testing.T) {
	reply := newResponder().Respond(domain.IntentGeneral, "hm", "", domain.Analysis{})

	req := require.New(t)
	req.Contains(reply, "Based on my analysis of your document,")
	req.NotContains(reply, "the key terms appear to be")
	req.Contains(reply, "couldn't find specific content")
}

// Greeting has no dedicated document strategy; it lands on the contextual one.
func TestRespond_Greeting_FallsToContextual(t *testing.T) {
	reply := newResponder().Respond(domain.IntentGreeting, "hello", "", domain.Analysis{})

	require.Contains(t, reply, "Based on my analysis of your document,")
}

func TestConversation(t *testing.T) {
	req := require.New(t)

	req.Contains(Conversation(domain.ConversationGreeting), "Hello! I'm your local AI assistant.")
	req.Contains(Conversation(domain.ConversationQuestion), "I'd be happy to help answer your question.")
	req.Contains(Conversation(domain.ConversationRequest), "I understand you're looking for something.")
	req.Contains(Conversation(domain.ConversationDefault), "I'm here to help you analyze files and documents.")
	// unknown intents degrade to the default string
	req.Equal(Conversation(domain.ConversationDefault), Conversation(domain.ConversationIntent("nope")))
}
