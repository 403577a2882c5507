package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cascade-freight/chatbot-service/internal/directory"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User *domain.User
	Role domain.Role
}

// SessionMiddleware validates session cookies and loads principals.
type SessionMiddleware struct {
	tokens     *TokenManager
	users      *directory.Directory
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, users *directory.Directory, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, users: users, cookieName: cookieName}
}

func (m *SessionMiddleware) resolve(c *fiber.Ctx) error {
	tokenStr := c.Cookies(m.cookieName)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("missing session token")
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired session")
	}

	// The directory can change independently of token lifetime, so the
	// embedded subject is re-resolved on every request.
	user, ok := m.users.Lookup(claims.Subject)
	if !ok {
		return apperrors.NewUnauthorized("unknown user")
	}
	if user.Disabled {
		return apperrors.NewUnauthorized("account disabled")
	}

	c.Locals(principalKey, &Principal{User: user, Role: user.Role})
	return nil
}

// Handle enforces authentication for protected API routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	if err := m.resolve(c); err != nil {
		return err
	}
	return c.Next()
}

// HandleBrowser enforces authentication for rendered pages, redirecting
// unauthenticated callers to the login form instead of returning JSON.
func (m *SessionMiddleware) HandleBrowser(c *fiber.Ctx) error {
	if err := m.resolve(c); err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
