// Package registry holds the admin-side repositories. Each repository is the
// sole owner of its query text, binds parameters positionally, and hands back
// fully materialized slices so nothing downstream holds a live cursor.
package registry

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Students persists student records.
type Students struct {
	db *sql.DB
}

// NewStudents creates a repo.
func NewStudents(db *sql.DB) *Students {
	return &Students{db: db}
}

// Insert creates a student and returns the generated id. PasswordHash must
// already be hashed; this layer never sees plaintext.
func (r *Students) Insert(ctx context.Context, s model.Student) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO student (name, email, password, course, semester)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING student_id
	`, s.Name, s.Email, s.PasswordHash, s.Course, s.Semester)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, apperr.FromDB(err)
	}
	return id, nil
}

// List returns all students ordered by id. Password hashes stay out of the
// listing.
func (r *Students) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT student_id, name, email, course, semester
		FROM student
		ORDER BY student_id
	`)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Course, &s.Semester); err != nil {
			return nil, apperr.FromDB(err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return students, nil
}
