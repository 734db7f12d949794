package enrollController

import (
	"log"

	"learnex/database"
	"learnex/middleware"
	"learnex/store"

	"github.com/gofiber/fiber/v2"
)

// Enroll records the student's enrollment in the course. No already-
// enrolled or capacity check: each call inserts its own record, and the
// aggregation counts every one. Only a store write failure is an error.
func Enroll(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	courseID, ok := c.Locals("courseID").(uint)
	if id == nil || !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Enrollment failed",
		})
	}

	catalog := store.NewCatalog(database.Database.Db)
	if _, err := catalog.Enroll(id.AccountID, courseID); err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Enrollment failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
