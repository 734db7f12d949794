package pageRoutes

import (
	pageControllers "learnex/controllers/pages"

	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes wires the public catalog pages.
func SetupPageRoutes(app *fiber.App) {
	app.Get("/", pageControllers.Home)
	app.Get("/courses", pageControllers.Courses)
	app.Get("/course/:id", pageControllers.CourseDetail)
}
