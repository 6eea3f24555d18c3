// Package auth validates submitted credentials and produces session
// principals. Mismatched password, unknown account and wrong login form all
// collapse into the same ErrAuthFailed so responses cannot be used to probe
// which usernames exist; storage failures are kept distinct.
package auth

import (
	"context"
	"errors"
	"fmt"

	"campussync/internal/apperr"
	"campussync/internal/session"
)

// Service performs login checks against the credential tables.
type Service struct {
	creds Credentials
}

// NewService creates a login service.
func NewService(creds Credentials) *Service {
	return &Service{creds: creds}
}

// LoginAdmin validates an admin login.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (session.Principal, error) {
	cred, err := s.creds.AdminByUsername(ctx, username)
	return verify(session.RoleAdmin, cred, err, password)
}

// LoginStudent validates a student login.
func (s *Service) LoginStudent(ctx context.Context, email, password string) (session.Principal, error) {
	cred, err := s.creds.StudentByEmail(ctx, email)
	return verify(session.RoleStudent, cred, err, password)
}

// LoginFaculty validates a faculty login.
func (s *Service) LoginFaculty(ctx context.Context, email, password string) (session.Principal, error) {
	cred, err := s.creds.FacultyByEmail(ctx, email)
	return verify(session.RoleFaculty, cred, err, password)
}

func verify(role session.Role, cred Credential, lookupErr error, password string) (session.Principal, error) {
	switch {
	case errors.Is(lookupErr, ErrNoAccount):
		return session.Principal{}, apperr.ErrAuthFailed
	case lookupErr != nil:
		return session.Principal{}, fmt.Errorf("credential lookup: %w", lookupErr)
	case !CheckPassword(cred.Hash, password):
		return session.Principal{}, apperr.ErrAuthFailed
	}
	return session.Principal{Role: role, ID: cred.ID}, nil
}
