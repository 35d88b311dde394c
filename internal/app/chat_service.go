package app

import (
	"errors"
	"strings"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"solutiontech-chat/internal/bot"
	"solutiontech-chat/internal/metrics"
	"solutiontech-chat/internal/model"
	"solutiontech-chat/internal/repository"
	"solutiontech-chat/internal/upload"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyContent    = errors.New("message has no text and no attachments")
)

// ChatService orchestrates one submission end to end: validate, persist the
// user message, refresh the session preview, synthesize the bot reply,
// persist it, and return the pair. Writes to one session are serialized so
// readers never observe a user message whose bot reply is still undecided.
type ChatService struct {
	sessionRepo *repository.SessionRepository
	messageRepo *repository.MessageRepository
	search      *repository.SearchIndex
	responder   *bot.Responder
	processor   *upload.Processor
	metrics     *metrics.Metrics

	sessionLocks cmap.ConcurrentMap[string, *sync.Mutex]
}

func NewChatService(
	sessionRepo *repository.SessionRepository,
	messageRepo *repository.MessageRepository,
	search *repository.SearchIndex,
	responder *bot.Responder,
	processor *upload.Processor,
	m *metrics.Metrics,
) *ChatService {
	return &ChatService{
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		search:       search,
		responder:    responder,
		processor:    processor,
		metrics:      m,
		sessionLocks: cmap.New[*sync.Mutex](),
	}
}

type SubmitMessageInput struct {
	SessionID string
	Text      string
	Uploads   []upload.Upload
}

type SubmitMessageResult struct {
	UserMessage model.Message `json:"user_message"`
	BotMessage  model.Message `json:"bot_message"`
	Session     model.Session `json:"session"`
}

func (s *ChatService) CreateSession(title string) *model.Session {
	session := s.sessionRepo.Create(strings.TrimSpace(title))
	if s.metrics != nil {
		s.metrics.SessionsCreated.Inc()
	}
	return session
}

func (s *ChatService) ListSessions() []model.Session {
	return s.sessionRepo.List()
}

func (s *ChatService) ListMessages(sessionID string) ([]model.Message, error) {
	if s.sessionRepo.Get(sessionID) == nil {
		return nil, ErrSessionNotFound
	}
	return s.messageRepo.ListForSession(sessionID), nil
}

func (s *ChatService) SearchMessages(query string) []model.SearchResult {
	if s.metrics != nil {
		s.metrics.SearchQueries.Inc()
	}
	return s.search.Search(query)
}

// SubmitMessage runs the full submission flow. Validation happens before any
// write, so a rejected submission leaves no partial state behind.
func (s *ChatService) SubmitMessage(in SubmitMessageInput) (*SubmitMessageResult, error) {
	started := time.Now()

	text := strings.TrimSpace(in.Text)
	if text == "" && len(in.Uploads) == 0 {
		return nil, ErrEmptyContent
	}

	lock := s.sessionLock(in.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if s.sessionRepo.Get(in.SessionID) == nil {
		return nil, ErrSessionNotFound
	}

	var files []model.Attachment
	for _, u := range in.Uploads {
		attachment, err := s.processor.Process(u)
		if err != nil {
			return nil, err
		}
		files = append(files, attachment)
	}

	userMessage := s.messageRepo.Append(in.SessionID, text, model.SenderUser, files)
	session := s.sessionRepo.Touch(in.SessionID, text, len(files))

	reply := s.responder.Reply(bot.Classify(text), len(files) > 0)
	botMessage := s.messageRepo.Append(in.SessionID, reply, model.SenderBot, nil)

	if s.metrics != nil {
		s.metrics.MessagesAppended.WithLabelValues(string(model.SenderUser)).Inc()
		s.metrics.MessagesAppended.WithLabelValues(string(model.SenderBot)).Inc()
		s.metrics.SubmitDuration.Observe(time.Since(started).Seconds())
	}

	return &SubmitMessageResult{
		UserMessage: userMessage,
		BotMessage:  botMessage,
		Session:     *session,
	}, nil
}

func (s *ChatService) sessionLock(id string) *sync.Mutex {
	s.sessionLocks.SetIfAbsent(id, &sync.Mutex{})
	lock, _ := s.sessionLocks.Get(id)
	return lock
}
