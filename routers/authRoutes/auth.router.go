package authRoutes

import (
	authControllers "learnex/controllers/auth"
	authValidators "learnex/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires login, registration, and logout.
func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", authControllers.ShowLogin)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/register", authControllers.ShowRegister)
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Get("/logout", authControllers.Logout)
}
