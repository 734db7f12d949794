package authController

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"learnex/config"
	"learnex/database"
	"learnex/models"
	"learnex/security"
	"learnex/session"
	"learnex/store"
	"learnex/utils"
	authValidator "learnex/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ShowLogin renders the login form.
func ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Login - Learnex",
	}, "layout")
}

// Login authenticates the presented credentials for the selected role and
// starts a session. Every mismatch, whether an unknown account or a wrong
// password, re-renders the form with the same generic message.
func Login(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedLogin").(*authValidator.LoginForm)
	if !ok {
		return invalidCredentials(c)
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(form.Role)))
	if role != models.RoleAdmin && role != models.RoleInstructor {
		role = models.RoleStudent
	}

	creds := store.NewCredentials(database.Database.Db)
	verifier := security.VerifierFor(role)

	var accountID uint
	switch role {
	case models.RoleAdmin:
		if form.Email != config.AppConfig.AdminID ||
			!verifier.Verify(form.Password, config.AppConfig.AdminPassword) {
			return invalidCredentials(c)
		}
		// Admin has no persisted record; the session carries only the role.
		accountID = 0

	case models.RoleInstructor:
		instructor, err := creds.FindInstructorByLoginID(form.Email)
		if err != nil || !verifier.Verify(form.Password, instructor.Password) {
			return invalidCredentials(c)
		}
		accountID = instructor.ID

	default:
		student, err := creds.FindStudentByEmail(form.Email)
		if err != nil || !verifier.Verify(form.Password, student.Password) {
			return invalidCredentials(c)
		}
		accountID = student.ID
	}

	token, err := session.Sessions.Start(accountID, role)
	if err != nil {
		log.Printf("Error starting session: %v", err)
		return invalidCredentials(c)
	}
	session.Sessions.SetCookie(c, token)

	trackLogin(c, accountID, role)

	return c.Redirect("/dashboard")
}

// ShowRegister renders the registration form.
func ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{
		"Title": "Register - Learnex",
	}, "layout")
}

// Register creates a student or instructor account, starts a session, and
// redirects to the dashboard. The role defaults to student when it is not
// recognized; admin registration was already rejected by the validator.
func Register(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedRegister").(*authValidator.RegisterForm)
	if !ok {
		return registerError(c, "Registration failed")
	}

	creds := store.NewCredentials(database.Database.Db)

	hashed, err := security.HashPassword(form.Password, config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return registerError(c, "Registration failed")
	}

	role := models.RoleStudent
	var accountID uint

	if strings.EqualFold(strings.TrimSpace(form.Role), string(models.RoleInstructor)) {
		role = models.RoleInstructor

		// Friendly pre-check; the unique index still catches a racing insert.
		if _, err := creds.FindInstructorByLoginID(form.Email); err == nil {
			return registerError(c, "User already exists")
		}

		instructor := models.Instructor{
			LoginID:         form.Email,
			Password:        hashed,
			ConfirmPassword: hashed,
		}
		if err := creds.CreateInstructor(&instructor); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return registerError(c, "User already exists")
			}
			log.Printf("Error creating instructor: %v", err)
			return registerError(c, "Registration failed")
		}
		accountID = instructor.ID
	} else {
		if _, err := creds.FindStudentByEmail(form.Email); err == nil {
			return registerError(c, "User already exists")
		}

		student := models.Student{
			Name:     strings.TrimSpace(form.Name),
			Email:    form.Email,
			Password: hashed,
			Role:     string(models.RoleStudent),
			Terms:    termsPayload(form.Terms),
		}
		if err := creds.CreateStudent(&student); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return registerError(c, "User already exists")
			}
			log.Printf("Error creating student: %v", err)
			return registerError(c, "Registration failed")
		}
		accountID = student.ID
	}

	token, err := session.Sessions.Start(accountID, role)
	if err != nil {
		log.Printf("Error starting session: %v", err)
		return registerError(c, "Registration failed")
	}
	session.Sessions.SetCookie(c, token)

	trackLogin(c, accountID, role)

	go utils.SendWelcomeEmail(form.Email, form.Name)

	return c.Redirect("/dashboard")
}

// Logout destroys the session and sends the visitor home. Destroying an
// already-absent session is fine, so logout never fails.
func Logout(c *fiber.Ctx) error {
	token := c.Cookies(session.Sessions.CookieName())
	if err := session.Sessions.Destroy(token); err != nil {
		log.Printf("Error destroying session: %v", err)
	}
	session.Sessions.ClearCookie(c)
	return c.Redirect("/")
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Login - Learnex",
		"Error": "Invalid credentials",
	}, "layout")
}

func registerError(c *fiber.Ctx, message string) error {
	return c.Render("register", fiber.Map{
		"Title": "Register - Learnex",
		"Error": message,
	}, "layout")
}

// termsPayload packs whatever the form submitted into the free-form terms
// column.
func termsPayload(terms string) datatypes.JSON {
	payload, err := json.Marshal(map[string]any{"accepted": terms != ""})
	if err != nil {
		return nil
	}
	return datatypes.JSON(payload)
}

func trackLogin(c *fiber.Ctx, accountID uint, role models.Role) {
	tracking := models.LoginTracking{
		AccountID: accountID,
		Role:      string(role),
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording login: %v", err)
	}
}
