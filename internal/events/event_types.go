package events

import (
	"time"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventChatAnswered   EventType = "chat_answered"
	EventDelegateFailed EventType = "delegate_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// LoginFailedPayload payload.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

// ChatAnsweredPayload payload.
type ChatAnsweredPayload struct {
	Topic  domain.Topic `json:"topic"`
	UsedAI bool         `json:"used_ai"`
}

// DelegateFailedPayload payload.
type DelegateFailedPayload struct {
	Topic domain.Topic `json:"topic"`
	Error string       `json:"error"`
}
