package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"solutiontech-chat/internal/model"
)

// MessageRepository owns append-only message logs keyed by session. Ids are
// unique across the whole store, timestamps are rendered HH:MM at append
// time, and messages are never mutated or deleted.
type MessageRepository struct {
	mu        sync.RWMutex
	bySession map[string][]model.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		bySession: make(map[string][]model.Message),
	}
}

// Append stores a new message at the end of the session's log and returns the
// stored record. Callers are expected to have validated the session id; the
// service layer enforces referential integrity before writing.
func (r *MessageRepository) Append(chatID, text string, sender model.Sender, files []model.Attachment) model.Message {
	message := model.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now().Format("15:04"),
		Files:     files,
	}

	r.mu.Lock()
	r.bySession[chatID] = append(r.bySession[chatID], message)
	r.mu.Unlock()

	return message
}

// ListForSession returns the full ordered log for a session. An unknown or
// empty session yields an empty slice, not an error.
func (r *MessageRepository) ListForSession(chatID string) []model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.bySession[chatID]
	out := make([]model.Message, len(log))
	copy(out, log)
	return out
}
