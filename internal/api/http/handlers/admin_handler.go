package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/api/dto"
	"github.com/cascade-freight/chatbot-service/internal/observability"
	"github.com/cascade-freight/chatbot-service/internal/service"
)

// recentLogLimit caps the admin audit-log view.
const recentLogLimit = 25

// AdminHandler exposes admin-only views over the audit log and counters.
type AdminHandler struct {
	chat    *service.ChatService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(chatService *service.ChatService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{chat: chatService, metrics: metrics}
}

// Logs handles GET /admin/logs, returning the newest entries oldest-first.
func (h *AdminHandler) Logs(c *fiber.Ctx) error {
	entries := h.chat.RecentLogs(recentLogLimit)
	return c.JSON(dto.LogsResponse{
		Count:   len(entries),
		Entries: entries,
	})
}

// Metrics handles GET /admin/metrics, returning the request counters.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
