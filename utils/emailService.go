package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"learnex/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learnex <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendWelcomeEmail greets a new account after registration. Runs off the
// request path; failures are logged and otherwise ignored.
func SendWelcomeEmail(email, name string) {
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`
	<div>
		<h2>Welcome to Learnex, %s!</h2>
		<p>Your account is ready. Browse the catalog and enroll in your first course.</p>
	</div>`, name)

	if err := SendEmail([]string{email}, "Welcome to Learnex", body); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}
