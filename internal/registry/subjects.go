package registry

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Subjects persists subject records.
type Subjects struct {
	db *sql.DB
}

// NewSubjects creates a repo.
func NewSubjects(db *sql.DB) *Subjects {
	return &Subjects{db: db}
}

// Insert creates a subject and returns the generated id. A dangling course
// or faculty id fails the foreign key and surfaces as ErrConstraint.
func (r *Subjects) Insert(ctx context.Context, s model.Subject) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO subject (subject_name, course_id, faculty_id)
		VALUES ($1, $2, $3)
		RETURNING subject_id
	`, s.Name, s.CourseID, s.FacultyID)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, apperr.FromDB(err)
	}
	return id, nil
}

// ListJoined returns every subject enriched with its course and faculty
// names. LEFT JOINs keep subjects with dangling references in the listing,
// with nil names, instead of dropping the row.
func (r *Subjects) ListJoined(ctx context.Context) ([]model.SubjectDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.subject_id, s.subject_name, c.course_name, f.name AS faculty_name
		FROM subject s
		LEFT JOIN course c ON s.course_id = c.course_id
		LEFT JOIN faculty f ON s.faculty_id = f.faculty_id
		ORDER BY s.subject_name
	`)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var subjects []model.SubjectDetail
	for rows.Next() {
		var d model.SubjectDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.CourseName, &d.FacultyName); err != nil {
			return nil, apperr.FromDB(err)
		}
		subjects = append(subjects, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return subjects, nil
}
