package session

import (
	"errors"
	"time"

	"learnex/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is what a session resolves to: an optional account id and a
// role tag. Admin sessions carry an empty AccountID.
type Identity struct {
	AccountID uint
	Role      models.Role
}

// Manager owns server-side session state: it issues opaque tokens, maps
// them back to identities, and destroys them. Tokens travel in a cookie;
// everything else stays in the sessions table.
type Manager struct {
	db     *gorm.DB
	cookie string
	ttl    time.Duration
}

// NewManager returns a session manager writing to the given database.
func NewManager(db *gorm.DB, cookieName string, ttl time.Duration) *Manager {
	return &Manager{db: db, cookie: cookieName, ttl: ttl}
}

// Start creates a session for the identity and returns its token.
func (m *Manager) Start(accountID uint, role models.Role) (string, error) {
	record := models.Session{
		Token:     uuid.NewString(),
		AccountID: accountID,
		Role:      string(role),
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.db.Create(&record).Error; err != nil {
		return "", err
	}
	return record.Token, nil
}

// Read returns the identity behind a token, or nil for unknown or expired
// tokens. Expired rows are left for the sweeper.
func (m *Manager) Read(token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	var record models.Session
	err := m.db.Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, nil
	}
	return &Identity{AccountID: record.AccountID, Role: models.Role(record.Role)}, nil
}

// Destroy removes a session. Destroying an absent token is not an error.
func (m *Manager) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return m.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// PurgeExpired deletes sessions past their expiry and returns how many
// rows went away. Called by the cron sweeper.
func (m *Manager) PurgeExpired() (int64, error) {
	result := m.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookie
}

// SetCookie delivers the token to the browser.
func (m *Manager) SetCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cookie,
		Value:    token,
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the browser.
func (m *Manager) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// FromRequest reads the identity for the request's session cookie. Store
// errors degrade to anonymous; public pages must keep rendering.
func (m *Manager) FromRequest(c *fiber.Ctx) *Identity {
	identity, err := m.Read(c.Cookies(m.cookie))
	if err != nil {
		return nil
	}
	return identity
}
