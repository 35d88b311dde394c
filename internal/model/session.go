package model

// Session is one conversation thread. Timestamps are unix milliseconds;
// UpdatedAt advances on every message appended to the session.
type Session struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
	Preview   string `json:"preview"`
}
