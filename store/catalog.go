package store

import (
	"time"

	"learnex/models"

	"gorm.io/gorm"
)

// Catalog is the persistence boundary for Course and Enrollment records.
// Courses are seeded at startup and never mutated by user actions;
// enrollment counts are derived from enrollment rows, not written back to
// the course.
type Catalog interface {
	ListCourses(limit int) ([]models.Course, error)
	FindCourseByID(id uint) (*models.Course, error)
	CoursesByIDs(ids []uint) ([]models.Course, error)
	CoursesByInstructorName(name string) ([]models.Course, error)
	CountCourses() (int64, error)

	Enroll(studentID, courseID uint) (*models.Enrollment, error)
	EnrollmentsByStudent(studentID uint) ([]models.Enrollment, error)
	EnrollmentsByCourse(courseIDs []uint) (map[uint]int64, error)
	CountEnrollments() (int64, error)
}

type catalogImpl struct {
	db *gorm.DB
}

// NewCatalog returns a Catalog store backed by the given database.
func NewCatalog(db *gorm.DB) Catalog {
	return &catalogImpl{db: db}
}

func (s *catalogImpl) ListCourses(limit int) ([]models.Course, error) {
	var courses []models.Course
	db := s.db.Order("id asc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *catalogImpl) FindCourseByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (s *catalogImpl) CoursesByIDs(ids []uint) ([]models.Course, error) {
	var courses []models.Course
	if len(ids) == 0 {
		return courses, nil
	}
	if err := s.db.Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// CoursesByInstructorName matches the course's free-text instructor field.
// Courses are not foreign-keyed to instructor accounts, so ownership is a
// case-insensitive name match.
func (s *catalogImpl) CoursesByInstructorName(name string) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("LOWER(instructor) = ?", NormalizeKey(name)).Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *catalogImpl) CountCourses() (int64, error) {
	var count int64
	err := s.db.Model(&models.Course{}).Count(&count).Error
	return count, err
}

// Enroll always inserts a new enrollment row. There is no already-enrolled,
// course-existence, or capacity check; repeated calls produce one row each.
func (s *catalogImpl) Enroll(studentID, courseID uint) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
		Progress:   0,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *catalogImpl) EnrollmentsByStudent(studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("student_id = ?", studentID).Order("enrolled_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// EnrollmentsByCourse returns the enrollment count for each requested
// course. Every requested id appears in the result, pre-seeded to 0, so
// courses without enrollments are reported rather than omitted.
func (s *catalogImpl) EnrollmentsByCourse(courseIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(courseIDs))
	for _, id := range courseIDs {
		counts[id] = 0
	}
	if len(courseIDs) == 0 {
		return counts, nil
	}

	rows := []struct {
		CourseID uint
		Total    int64
	}{}
	err := s.db.Model(&models.Enrollment{}).
		Select("course_id, COUNT(*) as total").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CourseID] = row.Total
	}
	return counts, nil
}

func (s *catalogImpl) CountEnrollments() (int64, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).Count(&count).Error
	return count, err
}
