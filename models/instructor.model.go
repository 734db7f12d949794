package models

import "gorm.io/gorm"

// Instructor is a teaching account. LoginID is the unique login key for
// this variant, stored lowercased and trimmed. ConfirmPassword is a
// redundant column carried over from the legacy schema; it is stored at
// registration and never independently validated.
type Instructor struct {
	gorm.Model
	LoginID         string `json:"login_id" gorm:"uniqueIndex;not null"`
	Password        string `json:"-" gorm:"not null"`
	ConfirmPassword string `json:"-"`
}
