package auth

import (
	"context"
	"database/sql"
	"errors"

	"campussync/internal/apperr"
)

// Credential is one row from a credential table.
type Credential struct {
	ID   int64
	Hash string
}

// ErrNoAccount distinguishes "no such user" from storage failures;
// the login service collapses it and password mismatch into ErrAuthFailed.
var ErrNoAccount = errors.New("no such account")

// Credentials looks up stored login credentials. Admin and Student/Faculty
// live in separate tables; there is no unified identity lookup.
type Credentials interface {
	AdminByUsername(ctx context.Context, username string) (Credential, error)
	StudentByEmail(ctx context.Context, email string) (Credential, error)
	FacultyByEmail(ctx context.Context, email string) (Credential, error)
}

// PGCredentials reads credentials from Postgres.
type PGCredentials struct {
	db *sql.DB
}

// NewPGCredentials creates the store.
func NewPGCredentials(db *sql.DB) *PGCredentials {
	return &PGCredentials{db: db}
}

func (s *PGCredentials) AdminByUsername(ctx context.Context, username string) (Credential, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT admin_id, password FROM admin WHERE username = $1`, username)
	return scanCredential(row)
}

func (s *PGCredentials) StudentByEmail(ctx context.Context, email string) (Credential, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT student_id, password FROM student WHERE email = $1`, email)
	return scanCredential(row)
}

func (s *PGCredentials) FacultyByEmail(ctx context.Context, email string) (Credential, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT faculty_id, password FROM faculty WHERE email = $1`, email)
	return scanCredential(row)
}

func scanCredential(row *sql.Row) (Credential, error) {
	var c Credential
	if err := row.Scan(&c.ID, &c.Hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Credential{}, ErrNoAccount
		}
		return Credential{}, apperr.FromDB(err)
	}
	return c, nil
}

// EnsureAdmin inserts the bootstrap admin account if the username is not
// taken. Used at startup so a fresh deployment has a way in.
func (s *PGCredentials) EnsureAdmin(ctx context.Context, username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO admin (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, username, hash)
	return apperr.FromDB(err)
}
