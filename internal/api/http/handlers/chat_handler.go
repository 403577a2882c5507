package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/api/dto"
	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/service"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

// ChatHandler exposes the chat API.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.chat.Handle(c.UserContext(), principal.User, req.Message)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.ChatResponse{
		Reply:     result.Reply,
		Topic:     result.Topic,
		Role:      result.Role,
		Timestamp: result.Timestamp,
	})
}
