package authController_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"learnex/config"
	"learnex/database"
	"learnex/models"
	authRoutes "learnex/routers/authRoutes"
	dashboardRoutes "learnex/routers/dashboardRoutes"
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
	// A pooled second connection would see its own empty memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Instructor{},
		&models.Course{},
		&models.Enrollment{},
		&models.Session{},
		&models.LoginTracking{},
	))
	database.Database = database.DbInstance{Db: db}
	session.Setup()

	app := fiber.New(fiber.Config{Views: views.Engine()})
	pageRoutes.SetupPageRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "learnex_session" && cookie.Value != "" {
			return cookie
		}
	}
	return nil
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func registerStudent(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Ada Lovelace"},
		"email":    {email},
		"password": {"secret123"},
		"role":     {"student"},
		"terms":    {"accepted"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	return cookie
}

func TestRegisterStudentAndLogin(t *testing.T) {
	app := setupApp(t)

	registerStudent(t, app, "ada@x.com")

	// Fresh login with the same credentials.
	resp := postForm(t, app, "/login", url.Values{
		"role":     {"student"},
		"email":    {"ada@x.com"},
		"password": {"secret123"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	assert.NotNil(t, sessionCookie(t, resp))

	// Stored secret is hashed, never the plaintext.
	var student models.Student
	require.NoError(t, database.Database.Db.First(&student).Error)
	assert.NotEqual(t, "secret123", student.Password)
	assert.True(t, strings.HasPrefix(student.Password, "$2"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	registerStudent(t, app, "a@x.com")

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Second Ada"},
		"email":    {"a@x.com"},
		"password": {"secret123"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "User already exists")
	assert.Nil(t, sessionCookie(t, resp))
}

func TestRegisterAdminRejected(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Eve"},
		"email":    {"eve@x.com"},
		"password": {"secret123"},
		"role":     {"admin"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Registration failed")
	assert.Nil(t, sessionCookie(t, resp))
}

func TestRegisterInstructor(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Professor Chen"},
		"email":    {"prof.chen@x.com"},
		"password": {"secret123"},
		"role":     {"instructor"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NotNil(t, sessionCookie(t, resp))

	var instructor models.Instructor
	require.NoError(t, database.Database.Db.First(&instructor).Error)
	assert.Equal(t, "prof.chen@x.com", instructor.LoginID)
}

func TestLoginUnknownStudent(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"role":     {"student"},
		"email":    {"nobody@x.com"},
		"password": {"whatever1"},
	})
	// Generic re-render: no redirect, no session, no hint which field
	// was wrong.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid credentials")
	assert.Nil(t, sessionCookie(t, resp))
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	registerStudent(t, app, "ada@x.com")

	resp := postForm(t, app, "/login", url.Values{
		"role":     {"student"},
		"email":    {"ada@x.com"},
		"password": {"wrong-pass"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid credentials")
	assert.Nil(t, sessionCookie(t, resp))
}

func TestAdminLoginFlow(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"role":     {"admin"},
		"email":    {"admin"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)

	// /dashboard dispatches by role.
	req, err := http.NewRequest(http.MethodGet, "/dashboard", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	dispatch, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, dispatch.StatusCode)
	assert.Equal(t, "/dashboard/admin", dispatch.Header.Get("Location"))
}

func TestAdminLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"role":     {"admin"},
		"email":    {"admin"},
		"password": {"admin124"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid credentials")
	assert.Nil(t, sessionCookie(t, resp))
}

func TestLogoutDestroysSession(t *testing.T) {
	app := setupApp(t)

	cookie := registerStudent(t, app, "ada@x.com")

	req, err := http.NewRequest(http.MethodGet, "/logout", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// The old token no longer opens the dashboard.
	req, err = http.NewRequest(http.MethodGet, "/dashboard", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLogoutWithoutSession(t *testing.T) {
	app := setupApp(t)

	req, err := http.NewRequest(http.MethodGet, "/logout", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
