package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"solutiontech-chat/internal/model"
)

const (
	defaultTitle    = "Nueva conversación"
	greetingPreview = "¡Hola! ¿En qué puedo ayudarte?"
	previewMaxLen   = 60
)

// SessionRepository owns session records in memory, in creation order.
// Sessions are never deleted; the only mutation after creation is the
// preview/updatedAt pair.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	order    []string
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*model.Session),
	}
}

func (r *SessionRepository) Create(title string) *model.Session {
	if title == "" {
		title = defaultTitle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UnixMilli()
	session := &model.Session{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Preview:   greetingPreview,
	}
	r.sessions[session.ID] = session
	r.order = append(r.order, session.ID)

	out := *session
	return &out
}

// Get returns a copy of the session, or nil when the id is unknown.
func (r *SessionRepository) Get(id string) *model.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil
	}
	out := *session
	return &out
}

// List returns all sessions in creation order.
func (r *SessionRepository) List() []model.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.sessions[id])
	}
	return out
}

// Touch recomputes the preview from the latest appended message and advances
// updatedAt. It returns nil when the id is unknown. The clock guard keeps
// updatedAt strictly increasing even when two appends land in the same
// millisecond.
func (r *SessionRepository) Touch(id, previewText string, attachmentCount int) *model.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil
	}

	session.Preview = buildPreview(previewText, attachmentCount)

	now := time.Now().UnixMilli()
	if now <= session.UpdatedAt {
		now = session.UpdatedAt + 1
	}
	session.UpdatedAt = now

	out := *session
	return &out
}

func buildPreview(text string, attachmentCount int) string {
	if text != "" {
		runes := []rune(text)
		if len(runes) > previewMaxLen {
			return string(runes[:previewMaxLen]) + "..."
		}
		return text
	}
	if attachmentCount == 1 {
		return "1 archivo enviado"
	}
	return fmt.Sprintf("%d archivos enviados", attachmentCount)
}
