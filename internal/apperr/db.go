package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

// FromDB maps a driver error onto the taxonomy: unique-key and foreign-key
// violations become ErrConstraint, everything else ErrStorage.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUniqueViolation || pgErr.Code == codeFKViolation {
			return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
