package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromDBConstraintCodes(t *testing.T) {
	for _, code := range []string{codeUniqueViolation, codeFKViolation} {
		err := FromDB(&pgconn.PgError{Code: code, ConstraintName: "student_email_key"})
		if !errors.Is(err, ErrConstraint) {
			t.Errorf("code %s: got %v, want ErrConstraint", code, err)
		}
		if errors.Is(err, ErrStorage) {
			t.Errorf("code %s: classified as both constraint and storage", code)
		}
	}
}

func TestFromDBOtherErrors(t *testing.T) {
	cases := []error{
		&pgconn.PgError{Code: "57P01"}, // admin shutdown
		fmt.Errorf("dial tcp: connection refused"),
	}
	for _, in := range cases {
		err := FromDB(in)
		if !errors.Is(err, ErrStorage) {
			t.Errorf("FromDB(%v) = %v, want ErrStorage", in, err)
		}
	}
}

func TestFromDBNil(t *testing.T) {
	if err := FromDB(nil); err != nil {
		t.Errorf("FromDB(nil) = %v, want nil", err)
	}
}

func TestFromDBWrappedDriverError(t *testing.T) {
	wrapped := fmt.Errorf("insert student: %w", &pgconn.PgError{Code: codeUniqueViolation})
	if err := FromDB(wrapped); !errors.Is(err, ErrConstraint) {
		t.Errorf("wrapped pg error: got %v, want ErrConstraint", err)
	}
}
