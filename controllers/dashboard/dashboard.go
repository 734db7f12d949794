package dashboardController

import (
	"log"

	"learnex/database"
	"learnex/identity"
	"learnex/middleware"
	"learnex/models"
	"learnex/store"

	"github.com/gofiber/fiber/v2"
)

// dashboardPaths is the redirect table keyed by role. Roles outside the
// table fall through to the login redirect.
var dashboardPaths = map[models.Role]string{
	models.RoleStudent:    "/dashboard/student",
	models.RoleInstructor: "/dashboard/instructor",
	models.RoleAdmin:      "/dashboard/admin",
}

// Dispatch sends an authenticated session to its role's dashboard.
func Dispatch(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	if id == nil {
		return c.Redirect("/login")
	}
	path, ok := dashboardPaths[id.Role]
	if !ok {
		return c.Redirect("/login")
	}
	return c.Redirect(path)
}

// Student renders the student's enrolled courses.
func Student(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	user := identity.CurrentUser(c)
	if id == nil || user == nil {
		// Stale session: the backing record is gone.
		return c.Redirect("/login")
	}

	catalog := store.NewCatalog(database.Database.Db)

	enrollments, err := catalog.EnrollmentsByStudent(id.AccountID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return c.Redirect("/login")
	}

	courseIDs := make([]uint, 0, len(enrollments))
	seen := make(map[uint]bool, len(enrollments))
	for _, e := range enrollments {
		if !seen[e.CourseID] {
			seen[e.CourseID] = true
			courseIDs = append(courseIDs, e.CourseID)
		}
	}

	courses, err := catalog.CoursesByIDs(courseIDs)
	if err != nil {
		log.Printf("Error fetching enrolled courses: %v", err)
		return c.Redirect("/login")
	}

	return c.Render("dashboard-student", fiber.Map{
		"Title":           "Dashboard - Learnex",
		"User":            user,
		"EnrolledCourses": courses,
	}, "layout")
}

// CourseRow pairs a course with its enrollment count for the instructor
// dashboard.
type CourseRow struct {
	Course models.Course
	Count  int64
}

// Instructor renders the courses listed under the instructor's name with
// per-course enrollment counts, zeros included.
func Instructor(c *fiber.Ctx) error {
	user := identity.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login")
	}

	catalog := store.NewCatalog(database.Database.Db)

	courses, err := catalog.CoursesByInstructorName(user.Name)
	if err != nil {
		log.Printf("Error fetching instructor courses: %v", err)
		return c.Redirect("/login")
	}

	courseIDs := make([]uint, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	counts, err := catalog.EnrollmentsByCourse(courseIDs)
	if err != nil {
		log.Printf("Error aggregating enrollments: %v", err)
		return c.Redirect("/login")
	}

	rows := make([]CourseRow, len(courses))
	for i, course := range courses {
		rows[i] = CourseRow{Course: course, Count: counts[course.ID]}
	}

	return c.Render("dashboard-instructor", fiber.Map{
		"Title": "Instructor Dashboard - Learnex",
		"User":  user,
		"Rows":  rows,
	}, "layout")
}

// Stats holds the aggregate counts shown on the admin dashboard.
type Stats struct {
	TotalUsers  int64
	Students    int64
	Instructors int64
	Courses     int64
	Enrollments int64
}

// Admin renders literal record counts from the stores.
func Admin(c *fiber.Ctx) error {
	user := identity.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login")
	}

	creds := store.NewCredentials(database.Database.Db)
	catalog := store.NewCatalog(database.Database.Db)

	var stats Stats
	var err error
	if stats.Students, err = creds.CountStudents(); err != nil {
		log.Printf("Error counting students: %v", err)
		return c.Redirect("/login")
	}
	if stats.Instructors, err = creds.CountInstructors(); err != nil {
		log.Printf("Error counting instructors: %v", err)
		return c.Redirect("/login")
	}
	if stats.Courses, err = catalog.CountCourses(); err != nil {
		log.Printf("Error counting courses: %v", err)
		return c.Redirect("/login")
	}
	if stats.Enrollments, err = catalog.CountEnrollments(); err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return c.Redirect("/login")
	}
	stats.TotalUsers = stats.Students + stats.Instructors

	return c.Render("dashboard-admin", fiber.Map{
		"Title": "Admin Dashboard - Learnex",
		"User":  user,
		"Stats": stats,
	}, "layout")
}
