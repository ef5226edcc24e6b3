package intent

import (
	"testing"

	"doc-lab/domain"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected domain.Intent
	}{
		{"Greeting", "Hello there", domain.IntentGreeting},
		{"Summary", "Please summarize the document", domain.IntentSummary},
		{"Summary via overview", "Give me an overview", domain.IntentSummary},
		{"Keywords", "List the keywords", domain.IntentKeywords},
		{"Keywords via key term", "key terms please", domain.IntentKeywords},
		// "this" contains "hi": the substring rules really do fire on it,
		// and greeting has top priority.
		{"Greeting via substring quirk", "summarize this document", domain.IntentGreeting},
		{"Sentiment", "What is the sentiment?", domain.IntentSentiment},
		{"Tone", "Describe the tone of the text", domain.IntentSentiment},
		{"Questions", "What questions does it answer?", domain.IntentQuestions},
		{"Questions via what", "what does it cover", domain.IntentQuestions},
		{"Facts", "Extract the facts for me", domain.IntentFacts},
		{"Translation", "Can you translate it?", domain.IntentTranslation},
		{"Statistics", "Show document statistics", domain.IntentStatistics},
		{"General fallback", "tell me more about the report", domain.IntentGeneral},
		{"Case insensitive", "SUMMARIZE NOW", domain.IntentSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Detect(tt.message))
		})
	}
}

// Multiple rules can match the same message; the table order decides.
func TestDetect_PriorityOrder(t *testing.T) {
	req := require.New(t)

	// greeting outranks summary
	req.Equal(domain.IntentGreeting, Detect("hello, summarize this"))
	// summary outranks sentiment
	req.Equal(domain.IntentSummary, Detect("summary of the sentiment"))
	// sentiment outranks statistics
	req.Equal(domain.IntentSentiment, Detect("sentiment statistics"))
	// "what" selects questions before the facts rule can see "information"
	req.Equal(domain.IntentQuestions, Detect("what information is there"))
}

func TestDocumentRules_TableShape(t *testing.T) {
	req := require.New(t)

	expected := []domain.Intent{
		domain.IntentGreeting,
		domain.IntentSummary,
		domain.IntentKeywords,
		domain.IntentSentiment,
		domain.IntentQuestions,
		domain.IntentFacts,
		domain.IntentTranslation,
		domain.IntentStatistics,
	}
	req.Len(DocumentRules, len(expected))
	for i, rule := range DocumentRules {
		req.Equal(expected[i], rule.Intent)
		req.NotEmpty(rule.Triggers)
	}
}

func TestDetectConversation(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected domain.ConversationIntent
	}{
		{"Greeting", "hello!", domain.ConversationGreeting},
		{"Greeting outranks question", "hello, what can you do?", domain.ConversationGreeting},
		{"Question mark", "are you online?", domain.ConversationQuestion},
		{"Question word", "how does it work", domain.ConversationQuestion},
		{"Request", "please look into my notes", domain.ConversationRequest},
		{"Request via need", "i need some assistance", domain.ConversationRequest},
		{"Default", "just browsing around", domain.ConversationDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DetectConversation(tt.message))
		})
	}
}
