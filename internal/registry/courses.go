package registry

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Courses persists course records.
type Courses struct {
	db *sql.DB
}

// NewCourses creates a repo.
func NewCourses(db *sql.DB) *Courses {
	return &Courses{db: db}
}

// Insert creates a course and returns the generated id.
func (r *Courses) Insert(ctx context.Context, name string) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO course (course_name)
		VALUES ($1)
		RETURNING course_id
	`, name)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, apperr.FromDB(err)
	}
	return id, nil
}

// List returns all courses ordered by name.
func (r *Courses) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT course_id, course_name
		FROM course
		ORDER BY course_name
	`)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, apperr.FromDB(err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return courses, nil
}
