// Package intent maps free-form messages onto the closed intent
// vocabularies. Classification is an ordered list of substring rules
// evaluated top-down; the first matching rule wins, so priority lives
// in the table itself and stays testable independently of the dispatch.
package intent

import (
	"strings"

	"doc-lab/domain"
)

// Rule binds one intent to the trigger substrings that select it.
type Rule[T ~string] struct {
	Intent   T
	Triggers []string
}

// DocumentRules is the priority-ordered table used when a document is present.
var DocumentRules = []Rule[domain.Intent]{
	{domain.IntentGreeting, []string{"hello", "hi", "hey"}},
	{domain.IntentSummary, []string{"summarize", "summary", "overview"}},
	{domain.IntentKeywords, []string{"keyword", "key term", "important words"}},
	{domain.IntentSentiment, []string{"sentiment", "tone", "mood"}},
	{domain.IntentQuestions, []string{"question", "ask", "what"}},
	{domain.IntentFacts, []string{"fact", "information", "data"}},
	{domain.IntentTranslation, []string{"translate", "translation"}},
	{domain.IntentStatistics, []string{"statistic", "analysis", "count"}},
}

// ConversationRules is the shorter table used when no document is present.
var ConversationRules = []Rule[domain.ConversationIntent]{
	{domain.ConversationGreeting, []string{"hello", "hi", "hey"}},
	{domain.ConversationQuestion, []string{"?", "what", "how", "why", "when", "where", "who"}},
	{domain.ConversationRequest, []string{"please", "can you", "could you", "i need", "find", "show", "help"}},
}

func classify[T ~string](message string, rules []Rule[T], fallback T) T {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				return rule.Intent
			}
		}
	}
	return fallback
}

// Detect classifies a message asked about a document.
func Detect(message string) domain.Intent {
	return classify(message, DocumentRules, domain.IntentGeneral)
}

// DetectConversation classifies a message when no document is present.
func DetectConversation(message string) domain.ConversationIntent {
	return classify(message, ConversationRules, domain.ConversationDefault)
}
