package store

import (
	"errors"
	"strings"

	"learnex/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no record matched the lookup.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateKey means the unique key already exists for the variant.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// Credentials is the persistence boundary for Student and Instructor
// account records. The fixed admin credential pair lives in config and
// never passes through this store.
type Credentials interface {
	FindStudentByEmail(email string) (*models.Student, error)
	FindStudentByID(id uint) (*models.Student, error)
	CreateStudent(student *models.Student) error
	CountStudents() (int64, error)

	FindInstructorByLoginID(loginID string) (*models.Instructor, error)
	FindInstructorByID(id uint) (*models.Instructor, error)
	CreateInstructor(instructor *models.Instructor) error
	CountInstructors() (int64, error)
}

type credentialsImpl struct {
	db *gorm.DB
}

// NewCredentials returns a Credentials store backed by the given database.
func NewCredentials(db *gorm.DB) Credentials {
	return &credentialsImpl{db: db}
}

// NormalizeKey lowercases and trims a unique login key the way both
// variants store theirs.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (s *credentialsImpl) FindStudentByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := s.db.Where("email = ?", NormalizeKey(email)).First(&student).Error
	if err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (s *credentialsImpl) FindStudentByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, id).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (s *credentialsImpl) CreateStudent(student *models.Student) error {
	student.Email = NormalizeKey(student.Email)
	return translate(s.db.Create(student).Error)
}

func (s *credentialsImpl) CountStudents() (int64, error) {
	var count int64
	err := s.db.Model(&models.Student{}).Count(&count).Error
	return count, err
}

func (s *credentialsImpl) FindInstructorByLoginID(loginID string) (*models.Instructor, error) {
	var instructor models.Instructor
	err := s.db.Where("login_id = ?", NormalizeKey(loginID)).First(&instructor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &instructor, nil
}

func (s *credentialsImpl) FindInstructorByID(id uint) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.db.First(&instructor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &instructor, nil
}

func (s *credentialsImpl) CreateInstructor(instructor *models.Instructor) error {
	instructor.LoginID = NormalizeKey(instructor.LoginID)
	return translate(s.db.Create(instructor).Error)
}

func (s *credentialsImpl) CountInstructors() (int64, error) {
	var count int64
	err := s.db.Model(&models.Instructor{}).Count(&count).Error
	return count, err
}

// translate maps gorm errors onto the store taxonomy. The unique indexes
// on email and login_id make the registration pre-check race-safe: a
// racing insert surfaces here as ErrDuplicateKey instead of a second row.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
