package models

import "gorm.io/gorm"

// Course is a catalog record. Instructor is a display name, not a foreign
// key to the instructors table. Students is the seeded display counter;
// real enrollment counts are derived from enrollments, never written back.
type Course struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image"`
	Category    string  `json:"category"`
	Lessons     int     `json:"lessons"`
	Students    int     `json:"students"`
}
