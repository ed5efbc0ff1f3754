package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

const claimsKey = "session_claims"

// Middleware is the single enforcement point for protected routes. It never
// consults the store: a token is valid iff its signature and expiry check out.
type Middleware struct {
	tokens    *TokenManager
	transport *CookieTransport
}

// NewMiddleware constructs the authorization gate.
func NewMiddleware(tokens *TokenManager, transport *CookieTransport) *Middleware {
	return &Middleware{tokens: tokens, transport: transport}
}

// Handle enforces authentication for protected routes. A missing credential
// is 401; a present but invalid or expired one is 403.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := m.transport.Extract(c)
	if token == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewForbidden("Invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated identity set by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
