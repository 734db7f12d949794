package middleware

import (
	"learnex/models"
	"learnex/session"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the Locals key under which the guards store the session
// identity for downstream handlers.
const IdentityKey = "identity"

// RequireAuthenticated passes requests whose session carries any valid
// role. Everything else is redirected to the login entry point with no
// error payload.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := session.Sessions.FromRequest(c)
		if id == nil || !id.Role.Valid() {
			return c.Redirect("/login")
		}
		c.Locals(IdentityKey, id)
		return c.Next()
	}
}

// RequireRole passes only sessions with exactly the expected role. A
// missing session and a wrong-role session are handled identically: the
// same redirect to /login, so the response does not reveal whether an
// account is logged in.
func RequireRole(expected models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := session.Sessions.FromRequest(c)
		if id == nil || id.Role != expected {
			return c.Redirect("/login")
		}
		c.Locals(IdentityKey, id)
		return c.Next()
	}
}

// Identity returns the session identity stored by a guard, or nil when the
// route is public.
func Identity(c *fiber.Ctx) *session.Identity {
	id, _ := c.Locals(IdentityKey).(*session.Identity)
	return id
}
