package identity

import (
	"errors"
	"fmt"

	"learnex/config"
	"learnex/models"
	"learnex/session"
	"learnex/store"
)

// Account is the unified current-user view handed to templates and
// dashboards, flattened across the three variants.
type Account struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// Resolver reconstructs the full current-user record for a session.
type Resolver struct {
	credentials store.Credentials
}

// NewResolver returns a resolver reading from the given credential store.
func NewResolver(credentials store.Credentials) *Resolver {
	return &Resolver{credentials: credentials}
}

// Resolve maps a session identity to its account. A nil result means
// "not logged in": no session, an unknown role, or a stale session whose
// backing record is gone. Only unexpected store failures return an error.
func (r *Resolver) Resolve(id *session.Identity) (*Account, error) {
	if id == nil || !id.Role.Valid() {
		return nil, nil
	}

	switch id.Role {
	case models.RoleAdmin:
		// Admin has no persisted record; synthesize it regardless of the
		// session's stored account id.
		return &Account{
			ID:    config.AppConfig.AdminID,
			Name:  "Admin",
			Email: config.AppConfig.AdminEmail,
			Role:  models.RoleAdmin,
		}, nil

	case models.RoleStudent:
		student, err := r.credentials.FindStudentByID(id.AccountID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &Account{
			ID:    fmt.Sprint(student.ID),
			Name:  student.Name,
			Email: student.Email,
			Role:  models.RoleStudent,
		}, nil

	case models.RoleInstructor:
		instructor, err := r.credentials.FindInstructorByID(id.AccountID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &Account{
			ID:    fmt.Sprint(instructor.ID),
			Name:  instructor.LoginID,
			Role:  models.RoleInstructor,
		}, nil
	}

	return nil, nil
}
