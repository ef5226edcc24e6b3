package domain

// Intent is the closed-vocabulary category a message about a document
// is classified into. It selects the response generation strategy.
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentSummary     Intent = "summary"
	IntentKeywords    Intent = "keywords"
	IntentSentiment   Intent = "sentiment"
	IntentQuestions   Intent = "questions"
	IntentFacts       Intent = "facts"
	IntentTranslation Intent = "translation"
	IntentStatistics  Intent = "statistics"
	IntentGeneral     Intent = "general"
)

// ConversationIntent is the smaller vocabulary used when no document
// is present.
type ConversationIntent string

const (
	ConversationGreeting ConversationIntent = "greeting"
	ConversationQuestion ConversationIntent = "question"
	ConversationRequest  ConversationIntent = "request"
	ConversationDefault  ConversationIntent = "default"
)
