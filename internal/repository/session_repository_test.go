package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateDefaults(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.Create("")
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Nueva conversación", session.Title)
	assert.Equal(t, "¡Hola! ¿En qué puedo ayudarte?", session.Preview)
	assert.Equal(t, session.CreatedAt, session.UpdatedAt)
	assert.Positive(t, session.CreatedAt)
}

func TestSessionCreateWithTitle(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create("Soporte técnico")
	assert.Equal(t, "Soporte técnico", session.Title)
}

func TestSessionListKeepsCreationOrder(t *testing.T) {
	repo := NewSessionRepository()
	first := repo.Create("a")
	second := repo.Create("b")
	third := repo.Create("c")

	listed := repo.List()
	require.Len(t, listed, 3)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
	assert.Equal(t, third.ID, listed[2].ID)

	// reads must not reorder anything
	repo.Get(second.ID)
	again := repo.List()
	assert.Equal(t, listed, again)
}

func TestSessionGetUnknown(t *testing.T) {
	repo := NewSessionRepository()
	assert.Nil(t, repo.Get("missing"))
}

func TestSessionTouchUnknown(t *testing.T) {
	repo := NewSessionRepository()
	assert.Nil(t, repo.Touch("missing", "hola", 0))
}

func TestSessionTouchSetsTextPreview(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create("")

	touched := repo.Touch(session.ID, "¿Qué servicios ofrecen?", 0)
	require.NotNil(t, touched)
	assert.Equal(t, "¿Qué servicios ofrecen?", touched.Preview)
}

func TestSessionTouchTruncatesLongPreview(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create("")

	long := strings.Repeat("á", 80)
	touched := repo.Touch(session.ID, long, 0)
	require.NotNil(t, touched)
	assert.Equal(t, strings.Repeat("á", 60)+"...", touched.Preview)
}

func TestSessionTouchAttachmentPhrase(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create("")

	touched := repo.Touch(session.ID, "", 1)
	require.NotNil(t, touched)
	assert.Equal(t, "1 archivo enviado", touched.Preview)

	touched = repo.Touch(session.ID, "", 3)
	require.NotNil(t, touched)
	assert.Equal(t, "3 archivos enviados", touched.Preview)
}

func TestSessionTouchStrictlyAdvancesUpdatedAt(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create("")

	prev := session.UpdatedAt
	for i := 0; i < 5; i++ {
		touched := repo.Touch(session.ID, "hola", 0)
		require.NotNil(t, touched)
		assert.Greater(t, touched.UpdatedAt, prev)
		assert.GreaterOrEqual(t, touched.UpdatedAt, touched.CreatedAt)
		prev = touched.UpdatedAt
	}
}
