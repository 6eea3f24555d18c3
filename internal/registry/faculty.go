package registry

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Faculty persists faculty records.
type Faculty struct {
	db *sql.DB
}

// NewFaculty creates a repo.
func NewFaculty(db *sql.DB) *Faculty {
	return &Faculty{db: db}
}

// Insert creates a faculty member and returns the generated id.
func (r *Faculty) Insert(ctx context.Context, f model.Faculty) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO faculty (name, email, password, department)
		VALUES ($1, $2, $3, $4)
		RETURNING faculty_id
	`, f.Name, f.Email, f.PasswordHash, f.Department)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, apperr.FromDB(err)
	}
	return id, nil
}

// List returns all faculty ordered by id.
func (r *Faculty) List(ctx context.Context) ([]model.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT faculty_id, name, email, department
		FROM faculty
		ORDER BY faculty_id
	`)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var members []model.Faculty
	for rows.Next() {
		var f model.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Department); err != nil {
			return nil, apperr.FromDB(err)
		}
		members = append(members, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return members, nil
}
