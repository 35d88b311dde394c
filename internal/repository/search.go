package repository

import (
	"strings"

	"github.com/samber/lo"

	"solutiontech-chat/internal/model"
)

// SearchIndex performs case-insensitive substring lookup over every session's
// message log. No structure is persisted between calls; each query is a full
// scan, which is fine at the expected data volume.
type SearchIndex struct {
	sessions *SessionRepository
	messages *MessageRepository
}

func NewSearchIndex(sessions *SessionRepository, messages *MessageRepository) *SearchIndex {
	return &SearchIndex{sessions: sessions, messages: messages}
}

// Search returns matches grouped by session in creation order, then by
// message order within each session. An empty query matches nothing.
func (s *SearchIndex) Search(query string) []model.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []model.SearchResult{}
	}

	results := []model.SearchResult{}
	for _, session := range s.sessions.List() {
		matched := lo.Filter(s.messages.ListForSession(session.ID), func(m model.Message, _ int) bool {
			return strings.Contains(strings.ToLower(m.Text), query)
		})
		results = append(results, lo.Map(matched, func(m model.Message, _ int) model.SearchResult {
			return model.SearchResult{
				SessionID:    session.ID,
				SessionTitle: session.Title,
				Message:      m,
			}
		})...)
	}
	return results
}
