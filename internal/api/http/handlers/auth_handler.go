package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	"github.com/cascade-freight/chatbot-service/internal/service"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

// roleMap translates login-form role values to directory role names.
var roleMap = map[string]domain.Role{
	"dispatcher": domain.RoleDispatcher,
	"compliance": domain.RoleComplianceOfficer,
	"manager":    domain.RoleWarehouseManager,
	"admin":      domain.RoleAdmin,
	"driver":     domain.RoleDriver,
}

// AuthHandler serves the login/logout flow.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName}
}

// Root handles GET / by redirecting to the login form.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Error": ""})
}

// Login handles POST /login form submissions.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	selectedRole := c.FormValue("role")

	user, token, exp, err := h.auth.Login(c.UserContext(), username, password)
	if err != nil {
		return h.renderLoginError(c, err)
	}

	// The role selector is mandatory and must agree with the directory
	// role; a missing or unknown value fails the same way as a mismatch.
	if expected, ok := roleMap[selectedRole]; !ok || expected != user.Role {
		return h.renderLoginError(c, apperrors.NewUnauthorized("Invalid role selection."))
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  exp,
		MaxAge:   int(time.Until(exp).Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Redirect("/chat", fiber.StatusSeeOther)
}

// Logout handles GET /logout: clears the session cookie. Stateless tokens
// stay valid until natural expiry, logout is purely client-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// ChatPage handles GET /chat, rendering the chat UI for the session user.
func (h *AuthHandler) ChatPage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return c.Render("chat", fiber.Map{
		"FullName":      principal.User.FullName,
		"Username":      principal.User.Username,
		"Role":          string(principal.Role),
		"AccessMessage": accessMessage(principal.Role),
	})
}

func (h *AuthHandler) renderLoginError(c *fiber.Ctx, err error) error {
	domainErr := apperrors.ToDomainError(err)
	status := domainErr.HTTPStatus
	if status == 0 {
		status = http.StatusUnauthorized
	}
	return c.Status(status).Render("login", fiber.Map{"Error": domainErr.Message})
}

func accessMessage(role domain.Role) string {
	switch role {
	case domain.RoleComplianceOfficer:
		return "You have access to high-level compliance summaries and audit guidance."
	case domain.RoleAdmin:
		return "You have full administrative access, including the chat audit log."
	case domain.RoleDispatcher:
		return "You can track shipments and coordinate driver assignments."
	case domain.RoleWarehouseManager:
		return "You can track shipments and manage driver assignments."
	case domain.RoleDriver:
		return "You can check shipments assigned to you and look up company policies."
	default:
		return "You can ask about shipments, policies and internal contacts."
	}
}
