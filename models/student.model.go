package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Student is a self-registered learner account. Email is the unique login
// key for this variant; uniqueness is scoped to the students table only.
type Student struct {
	gorm.Model
	Name     string         `json:"name"`
	Email    string         `json:"email" gorm:"uniqueIndex;not null"` // stored lowercased and trimmed
	Password string         `json:"-" gorm:"not null"`
	Role     string         `json:"role" gorm:"default:'student'"`
	Terms    datatypes.JSON `json:"terms"` // free-form terms-acceptance payload
}
