// Package session identifies the client session each request belongs to.
// The session id is an opaque uuid carried in a cookie; it selects which
// store the mock API operates on.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type contextKey struct{}

// ErrNoSession indicates a request reached the service layer without passing
// through Middleware.
var ErrNoSession = errors.New("no session in context")

// Config controls the session cookie.
type Config struct {
	CookieName string
	TTL        time.Duration
}

// Middleware ensures every request carries a session id, issuing a new
// cookie when none is present, and exposes the id through the user context.
func Middleware(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.CookieName)
		if id == "" {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cfg.TTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.SetUserContext(NewContext(c.UserContext(), id))
		return c.Next()
	}
}

// NewContext returns a context carrying the session id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext retrieves the session id set by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
