package identity

import (
	"log"

	"learnex/database"
	"learnex/session"
	"learnex/store"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser resolves the request's session to an account for rendering.
// Anonymous visitors, stale sessions, and resolver failures all come back
// nil; public pages render for nil users.
func CurrentUser(c *fiber.Ctx) *Account {
	id := session.Sessions.FromRequest(c)
	if id == nil {
		return nil
	}
	resolver := NewResolver(store.NewCredentials(database.Database.Db))
	account, err := resolver.Resolve(id)
	if err != nil {
		log.Printf("Error resolving current user: %v", err)
		return nil
	}
	return account
}
