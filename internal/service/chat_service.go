package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cascade-freight/chatbot-service/internal/ai"
	"github.com/cascade-freight/chatbot-service/internal/auditlog"
	"github.com/cascade-freight/chatbot-service/internal/chatbot"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	"github.com/cascade-freight/chatbot-service/internal/events"
	"github.com/cascade-freight/chatbot-service/internal/refdata"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

// Delegate is the optional external completion source.
type Delegate interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ChatResult is the orchestrator's answer for one message.
type ChatResult struct {
	Reply     string
	Topic     domain.Topic
	Role      domain.Role
	Timestamp time.Time
	UsedAI    bool
}

// ChatService orchestrates classify -> answer -> audit for each message.
type ChatService struct {
	generators *chatbot.Generators
	ref        *refdata.Store
	log        auditlog.Log
	delegate   Delegate
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ChatDependencies encapsulates requirements for the chat service.
type ChatDependencies struct {
	Generators *chatbot.Generators
	RefData    *refdata.Store
	AuditLog   auditlog.Log
	Delegate   Delegate
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewChatService builds the service. A nil Delegate disables the AI path
// entirely; no attempt is made.
func NewChatService(deps ChatDependencies) *ChatService {
	return &ChatService{
		generators: deps.Generators,
		ref:        deps.RefData,
		log:        deps.AuditLog,
		delegate:   deps.Delegate,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Handle answers one authenticated chat message. Delegate failures are
// absorbed here: the caller always gets an answer, produced by the
// rule-based generators when the delegate cannot serve.
func (s *ChatService) Handle(ctx context.Context, user *domain.User, message string) (*ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewEmptyMessage()
	}

	topic := chatbot.Classify(message)

	var reply string
	usedAI := false
	if s.delegate != nil {
		system := ai.BuildSystemPrompt(user.Username, user.Role, topic, s.ref.Serialize())
		aiReply, err := s.delegate.Complete(ctx, system, message)
		if err != nil {
			s.logger.Warn("ai delegate failed, falling back to rules", zap.Error(err))
			s.publish(ctx, events.EventDelegateFailed, user.Username,
				events.DelegateFailedPayload{Topic: topic, Error: err.Error()})
		} else {
			reply = aiReply
			usedAI = true
		}
	}
	if !usedAI {
		reply = s.generators.Reply(topic, message, user.Role)
	}

	entry := domain.ChatLogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Username:  user.Username,
		Role:      user.Role,
		Message:   message,
		Reply:     reply,
		Topic:     topic,
		UsedAI:    usedAI,
	}
	s.log.Append(entry)

	s.publish(ctx, events.EventChatAnswered, user.Username,
		events.ChatAnsweredPayload{Topic: topic, UsedAI: usedAI})

	return &ChatResult{
		Reply:     reply,
		Topic:     topic,
		Role:      user.Role,
		Timestamp: entry.Timestamp,
		UsedAI:    usedAI,
	}, nil
}

// RecentLogs returns up to n audit entries, most recent last.
func (s *ChatService) RecentLogs(n int) []domain.ChatLogEntry {
	return s.log.Recent(n)
}

func (s *ChatService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
