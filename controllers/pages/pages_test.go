package pageController_test

import (
	"io"
	"net/http"
	"testing"

	"learnex/config"
	"learnex/database"
	"learnex/models"
	pageRoutes "learnex/routers/pageRoutes"
	"learnex/session"
	"learnex/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{
		AdminID:         "admin",
		AdminPassword:   "admin123",
		AdminEmail:      "admin@learnex.local",
		SessionCookie:   "learnex_session",
		SessionTTLHours: 24,
		SaltRound:       4,
	}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Instructor{},
		&models.Course{},
		&models.Enrollment{},
		&models.Session{},
	))
	database.Database = database.DbInstance{Db: db}
	session.Setup()

	app := fiber.New(fiber.Config{Views: views.Engine()})
	pageRoutes.SetupPageRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHomeShowsSeededCourses(t *testing.T) {
	app := setupApp(t)
	database.SeedCourses()

	resp := get(t, app, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Full Stack Web Development")
}

func TestHomeRendersWithEmptyCatalog(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No courses available")
}

func TestCoursesListsEverything(t *testing.T) {
	app := setupApp(t)
	database.SeedCourses()

	resp := get(t, app, "/courses")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "Cybersecurity Essentials")
	assert.Contains(t, page, "UI/UX Design Fundamentals")
}

func TestCourseDetail(t *testing.T) {
	app := setupApp(t)

	course := models.Course{Title: "Data Science with Python", Instructor: "Dr. Michael Chen"}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp := get(t, app, "/course/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Data Science with Python")
}

func TestCourseDetailNotFound(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/course/9999")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Non-numeric ids get the same rendered 404.
	resp = get(t, app, "/course/doesnotexist")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
