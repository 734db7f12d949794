package models

import "time"

// Session stores a browser's authenticated state server-side, keyed by the
// opaque token delivered in the session cookie. AccountID is empty for
// admin sessions, which have no persisted account record.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	AccountID uint      `gorm:"index"`
	Role      string    `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
