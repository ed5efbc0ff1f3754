package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the fixed identifier for the session cookie.
const SessionCookieName = "token"

// CookieTransport binds session tokens to an HTTP-only, SameSite=Strict
// cookie. The Secure attribute is enabled only for production deployments.
type CookieTransport struct {
	secure bool
	maxAge time.Duration
}

// NewCookieTransport constructs the transport.
func NewCookieTransport(secure bool, maxAge time.Duration) *CookieTransport {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &CookieTransport{secure: secure, maxAge: maxAge}
}

// Attach stores the token in the session cookie on the response.
func (t *CookieTransport) Attach(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   t.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   int(t.maxAge.Seconds()),
		Expires:  time.Now().Add(t.maxAge),
		Path:     "/",
	})
}

// Detach clears the session cookie. Attributes mirror Attach so removal
// succeeds across browsers.
func (t *CookieTransport) Detach(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   t.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})
}

// Extract returns the token carried by the request, or "" when absent.
func (t *CookieTransport) Extract(c *fiber.Ctx) string {
	return c.Cookies(SessionCookieName)
}
