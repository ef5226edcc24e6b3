package responder

import "doc-lab/domain"

// canned answers used when no document is present
var conversationTable = map[domain.ConversationIntent]string{
	domain.ConversationGreeting: "Hello! I'm your local AI assistant. I can help you analyze files, extract information, and answer questions. What would you like to do?",
	domain.ConversationQuestion: "I'd be happy to help answer your question. However, I work best when you provide a file to analyze. Upload a document, image, or other file and ask me specific questions about it.",
	domain.ConversationRequest:  "I understand you're looking for something. To provide the most helpful response, please share a file or document you'd like me to analyze.",
	domain.ConversationDefault:  "I'm here to help you analyze files and documents. You can ask me to summarize content, extract key information, find specific details, or answer questions about your uploaded files.",
}

// Conversation returns the canned string for a no-document exchange.
func Conversation(it domain.ConversationIntent) string {
	if reply, ok := conversationTable[it]; ok {
		return reply
	}
	return conversationTable[domain.ConversationDefault]
}
