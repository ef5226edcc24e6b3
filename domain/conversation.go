package domain

import "strings"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchange of the caller-owned conversation history.
type Turn struct {
	Role    Role
	Content string
}

// Payload carries the document handed over by the caller on the first turn.
// Data is base64 encoded and may keep a data-URL prefix.
type Payload struct {
	Data     string
	MimeType string
}

// BuildContext flattens prior turns into a text block for continuity purposes.
// An empty history yields an empty string.
func BuildContext(history []Turn) string {
	if len(history) == 0 {
		return ""
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, string(turn.Role)+": "+turn.Content)
	}
	return "Previous conversation:\n" + strings.Join(lines, "\n")
}
