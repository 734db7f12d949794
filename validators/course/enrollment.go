package courseValidator

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the courseId route parameter and passes it on as
// a uint. The client-side enroll widget only reads the error field, so the
// failure shape matches the enrollment endpoint's.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("courseId")
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Enrollment failed",
			})
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}
