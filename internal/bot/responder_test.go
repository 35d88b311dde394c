package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyReturnsCannedTopicResponse(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))

	for _, topic := range []Topic{
		TopicOrganizationalStructure, TopicMission, TopicVision,
		TopicProjects, TopicServices, TopicContact, TopicDefault,
	} {
		assert.Equal(t, TopicReply(topic), r.Reply(topic, false))
	}
}

func TestReplyDefaultEnumeratesTopics(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))
	reply := r.Reply(TopicDefault, false)

	assert.Contains(t, reply, "misión")
	assert.Contains(t, reply, "visión")
	assert.Contains(t, reply, "servicios")
	assert.Contains(t, reply, "contacto")
}

func TestReplyWithAttachmentsDrawsFromPool(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(7)))
	pool := AttachmentReplies()

	for i := 0; i < 20; i++ {
		// topic must be ignored when attachments are present
		assert.Contains(t, pool, r.Reply(TopicServices, true))
	}
}

func TestReplyAttachmentPickIsSeedDeterministic(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(42)))
	b := NewResponder(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		require.Equal(t, a.Reply(TopicDefault, true), b.Reply(TopicDefault, true))
	}
}
