package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links one student to one course with progress state. There is
// deliberately no unique index on (student_id, course_id): a repeated
// enroll action inserts a second row and both rows count in reporting,
// matching the behavior dashboards were built against.
type Enrollment struct {
	gorm.Model
	StudentID  uint      `json:"student_id" gorm:"index;not null"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Progress   float64   `json:"progress" gorm:"default:0"` // completion percentage (0-100)
}
