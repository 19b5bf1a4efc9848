package entity

import "time"

// Message roles for the chat-model wire protocol.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the opaque {role, content} protocol sent to a
// chat model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationTurn is one stored chat entry of a session. Turns are
// appended in order and never mutated; the whole history is cleared
// explicitly by the user.
type ConversationTurn struct {
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}
