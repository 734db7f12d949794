package authValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// LoginForm carries the login request fields. Email doubles as the
// instructor login id when the instructor role is selected.
type LoginForm struct {
	Role     string `form:"role" json:"role"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// RegisterForm carries the registration request fields.
type RegisterForm struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
	Terms    string `form:"terms" json:"terms"`
}

// Login validator middleware. Malformed submissions get the same generic
// re-render a credential mismatch would, so nothing leaks about which
// field was wrong.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(LoginForm)
		if err := c.BodyParser(form); err != nil {
			return renderLoginError(c)
		}

		form.Email = strings.TrimSpace(form.Email)
		if form.Email == "" || strings.TrimSpace(form.Password) == "" {
			return renderLoginError(c)
		}

		c.Locals("validatedLogin", form)
		return c.Next()
	}
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(RegisterForm)
		if err := c.BodyParser(form); err != nil {
			return renderRegisterError(c, "Registration failed")
		}

		errors := make(map[string]string)

		// Validate Name
		if len(strings.TrimSpace(form.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		// Validate Email
		if form.Email == "" || !isValidEmail(form.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Password
		if len(strings.TrimSpace(form.Password)) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		// Admin accounts are never self-registered
		if strings.EqualFold(strings.TrimSpace(form.Role), "admin") {
			errors["role"] = "Registration failed"
		}

		if len(errors) > 0 {
			return renderRegisterError(c, firstOf(errors))
		}

		c.Locals("validatedRegister", form)
		return c.Next()
	}
}

func renderLoginError(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Login - Learnex",
		"Error": "Invalid credentials",
	}, "layout")
}

func renderRegisterError(c *fiber.Ctx, message string) error {
	return c.Render("register", fiber.Map{
		"Title": "Register - Learnex",
		"Error": message,
	}, "layout")
}

func firstOf(errors map[string]string) string {
	for _, field := range []string{"role", "email", "password", "name"} {
		if msg, ok := errors[field]; ok {
			return msg
		}
	}
	return "Registration failed"
}
