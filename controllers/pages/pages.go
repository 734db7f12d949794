package pageController

import (
	"errors"
	"log"
	"strconv"

	"learnex/database"
	"learnex/identity"
	"learnex/store"

	"github.com/gofiber/fiber/v2"
)

// Home renders the landing page with up to six featured courses. Store
// failures degrade to an empty course list; the page always renders.
func Home(c *fiber.Ctx) error {
	catalog := store.NewCatalog(database.Database.Db)

	courses, err := catalog.ListCourses(6)
	if err != nil {
		log.Printf("Error fetching featured courses: %v", err)
		courses = nil
	}

	user := identity.CurrentUser(c)
	return c.Render("index", fiber.Map{
		"Title":   "Learnex - Learn Without Limits",
		"User":    user,
		"Courses": courses,
	}, "layout")
}

// Courses renders the full course list with the same empty-list fallback.
func Courses(c *fiber.Ctx) error {
	catalog := store.NewCatalog(database.Database.Db)

	courses, err := catalog.ListCourses(0)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		courses = nil
	}

	user := identity.CurrentUser(c)
	return c.Render("courses", fiber.Map{
		"Title":   "All Courses - Learnex",
		"User":    user,
		"Courses": courses,
	}, "layout")
}

// CourseDetail renders one course. Unknown ids get the 404 page; other
// store failures get the 500 page.
func CourseDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return renderNotFound(c)
	}

	catalog := store.NewCatalog(database.Database.Db)
	course, err := catalog.FindCourseByID(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return renderNotFound(c)
	}
	if err != nil {
		log.Printf("Error fetching course %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Internal server error",
		}, "layout")
	}

	user := identity.CurrentUser(c)
	return c.Render("course-detail", fiber.Map{
		"Title":  course.Title + " - Learnex",
		"User":   user,
		"Course": course,
	}, "layout")
}

func renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Title": "Course Not Found",
	}, "layout")
}
