package dto

import (
	"time"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// ChatRequest payload for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the orchestrator's answer for one message.
type ChatResponse struct {
	Reply     string       `json:"reply"`
	Topic     domain.Topic `json:"topic"`
	Role      domain.Role  `json:"role"`
	Timestamp time.Time    `json:"timestamp"`
}

// LogsResponse wraps the admin audit-log view.
type LogsResponse struct {
	Count   int                   `json:"count"`
	Entries []domain.ChatLogEntry `json:"entries"`
}
