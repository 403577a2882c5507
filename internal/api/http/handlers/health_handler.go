package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/directory"
	"github.com/cascade-freight/chatbot-service/internal/refdata"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	users       *directory.Directory
	ref         *refdata.Store
	aiEnabled   bool
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, users *directory.Directory, ref *refdata.Store, aiEnabled bool) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, users: users, ref: ref, aiEnabled: aiEnabled}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. All data is in process memory, so
// readiness reduces to the static tables being populated.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	shipments, policies, contacts := h.ref.Counts()

	depStatus := fiber.Map{
		"directory_users": h.users.Size(),
		"shipments":       shipments,
		"policies":        policies,
		"contacts":        contacts,
		"ai_delegate":     h.aiEnabled,
	}

	if h.users.Size() == 0 || shipments == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "static tables not populated",
				"details": depStatus,
			},
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": depStatus,
	})
}
