package model

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn in a session. CreatedAt is rendered HH:MM at creation
// and never changes; ordering inside a session is insertion order.
type Message struct {
	ID        string       `json:"id"`
	ChatID    string       `json:"chatId"`
	Text      string       `json:"text"`
	Sender    Sender       `json:"sender"`
	CreatedAt string       `json:"createdAt"`
	Files     []Attachment `json:"files,omitempty"`
}

// SearchResult pairs a matched message with the session that owns it.
type SearchResult struct {
	SessionID    string  `json:"sessionId"`
	SessionTitle string  `json:"sessionTitle"`
	Message      Message `json:"message"`
}
