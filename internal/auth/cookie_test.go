package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieTransport_Attach(t *testing.T) {
	t.Parallel()

	transport := NewCookieTransport(false, 24*time.Hour)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		transport.Attach(c, "tok-value")
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	cookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, cookie, SessionCookieName+"=tok-value")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
	assert.Contains(t, cookie, "max-age=86400")
	assert.NotContains(t, strings.ToLower(cookie), "secure")
}

func TestCookieTransport_AttachSecureInProduction(t *testing.T) {
	t.Parallel()

	transport := NewCookieTransport(true, 24*time.Hour)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		transport.Attach(c, "tok-value")
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, strings.ToLower(resp.Header.Get("Set-Cookie")), "secure")
}

func TestCookieTransport_Detach(t *testing.T) {
	t.Parallel()

	transport := NewCookieTransport(false, 24*time.Hour)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		transport.Detach(c)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	cookie := resp.Header.Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, SessionCookieName+"="), "cookie: %s", cookie)
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
	assert.Contains(t, cookie, "expires=")
}

func TestCookieTransport_Extract(t *testing.T) {
	t.Parallel()

	transport := NewCookieTransport(false, 24*time.Hour)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(transport.Extract(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "carried"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "carried", string(body[:n]))
}
