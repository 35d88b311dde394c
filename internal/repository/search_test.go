package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solutiontech-chat/internal/model"
)

func newSearchFixture() (*SessionRepository, *MessageRepository, *SearchIndex) {
	sessions := NewSessionRepository()
	messages := NewMessageRepository()
	return sessions, messages, NewSearchIndex(sessions, messages)
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	sessions, messages, index := newSearchFixture()
	s := sessions.Create("")
	messages.Append(s.ID, "hola mundo", model.SenderUser, nil)

	assert.Empty(t, index.Search(""))
	assert.Empty(t, index.Search("   "))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	sessions, messages, index := newSearchFixture()
	s := sessions.Create("")
	messages.Append(s.ID, "Nuestra MISIÓN es clara", model.SenderBot, nil)

	results := index.Search("misión")
	require.Len(t, results, 1)
	assert.Equal(t, s.ID, results[0].SessionID)
}

func TestSearchNeverLeaksAcrossSessions(t *testing.T) {
	sessions, messages, index := newSearchFixture()
	a := sessions.Create("A")
	b := sessions.Create("B")
	messages.Append(a.ID, "hablemos de precios", model.SenderUser, nil)
	messages.Append(b.ID, "hablemos de contratos", model.SenderUser, nil)

	results := index.Search("contratos")
	require.Len(t, results, 1)
	assert.Equal(t, b.ID, results[0].SessionID)
	assert.Equal(t, "B", results[0].SessionTitle)
}

func TestSearchGroupsBySessionCreationOrder(t *testing.T) {
	sessions, messages, index := newSearchFixture()
	a := sessions.Create("A")
	b := sessions.Create("B")
	messages.Append(b.ID, "factura uno", model.SenderUser, nil)
	messages.Append(a.ID, "factura dos", model.SenderUser, nil)
	messages.Append(a.ID, "factura tres", model.SenderUser, nil)

	results := index.Search("factura")
	require.Len(t, results, 3)
	// session A was created first, so its matches come first in message order
	assert.Equal(t, "factura dos", results[0].Message.Text)
	assert.Equal(t, "factura tres", results[1].Message.Text)
	assert.Equal(t, "factura uno", results[2].Message.Text)
}

func TestSearchMatchesSubstringOnly(t *testing.T) {
	sessions, messages, index := newSearchFixture()
	s := sessions.Create("")
	messages.Append(s.ID, "presupuesto anual", model.SenderUser, nil)
	messages.Append(s.ID, "sin coincidencia", model.SenderUser, nil)

	results := index.Search("presupuesto")
	require.Len(t, results, 1)
	assert.Equal(t, "presupuesto anual", results[0].Message.Text)
}
