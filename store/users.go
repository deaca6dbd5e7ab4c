package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tjhs/sportrental/apperr"
	"github.com/tjhs/sportrental/model"
)

// CreateUserParams are the inputs for CreateUser. PasswordHash is the
// bcrypt hash produced by the auth package; the store never sees plaintext.
type CreateUserParams struct {
	Email        string
	Name         string
	Role         string
	PasswordHash string
	StudentID    string
	Year         int
}

// CreateUser adds a new user. Emails are unique, case-insensitive.
func (s *Store) CreateUser(p CreateUserParams) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return nil, apperr.Validationf("a valid email is required")
	}
	if p.Name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if !model.ValidRole(p.Role) {
		return nil, apperr.Validationf("unknown role %q", p.Role)
	}
	if p.PasswordHash == "" {
		return nil, apperr.Validationf("password hash is required")
	}
	if p.Role == model.RoleStudent {
		if p.StudentID == "" {
			return nil, apperr.Validationf("student id is required for students")
		}
		if p.Year <= 0 {
			return nil, apperr.Validationf("year is required for students")
		}
	}
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, p.Email) {
			return nil, apperr.Conflictf("a user with email %q already exists", p.Email)
		}
	}

	u := model.User{
		ID:           uuid.NewString(),
		Email:        p.Email,
		Name:         p.Name,
		Role:         p.Role,
		StudentID:    p.StudentID,
		Year:         p.Year,
		PasswordHash: p.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, u)

	if err := s.save(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, err
	}

	out := u
	return &out, nil
}

// GetUser returns a user by ID, or nil if unknown.
func (s *Store) GetUser(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(id)
	if u == nil {
		return nil, nil
	}
	out := *u
	return &out, nil
}

// GetUserByEmail returns a user by email (case-insensitive), or nil if unknown.
func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			out := s.users[i]
			return &out, nil
		}
	}
	return nil, nil
}

// ListUsers returns all users in creation order.
func (s *Store) ListUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// SetCurrentUser records who is signed in. An empty id clears the session.
func (s *Store) SetCurrentUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.findUser(id) == nil {
		return apperr.NotFoundf("user %q not found", id)
	}

	prev := s.currentUserID
	s.currentUserID = id

	if err := s.save(); err != nil {
		s.currentUserID = prev
		return err
	}
	return nil
}

// CurrentUser returns the signed-in user, or nil when nobody is.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(s.currentUserID)
	if u == nil {
		return nil
	}
	out := *u
	return &out
}
