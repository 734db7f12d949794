package dashboardRoutes

import (
	dashboardControllers "learnex/controllers/dashboard"
	enrollControllers "learnex/controllers/enroll"
	"learnex/middleware"
	"learnex/models"
	courseValidators "learnex/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes wires the role-guarded dashboards and the student
// enroll endpoint.
func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/dashboard")

	dashGroup.Get("/", middleware.RequireAuthenticated(), dashboardControllers.Dispatch)
	dashGroup.Get("/student", middleware.RequireRole(models.RoleStudent), dashboardControllers.Student)
	dashGroup.Get("/instructor", middleware.RequireRole(models.RoleInstructor), dashboardControllers.Instructor)
	dashGroup.Get("/admin", middleware.RequireRole(models.RoleAdmin), dashboardControllers.Admin)

	app.Post("/enroll/:courseId", middleware.RequireRole(models.RoleStudent), courseValidators.EnrollCourse(), enrollControllers.Enroll)
}
