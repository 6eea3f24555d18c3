// Package records persists attendance and marks. Reads are self-scoped: the
// student id is bound inside the query from the session principal, never
// taken from request parameters, so one student can never read another's rows.
package records

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Repository persists attendance and marks facts.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// AttendanceFor returns the attendance rows belonging to studentID, joined
// with the subject name, newest first.
func (r *Repository) AttendanceFor(ctx context.Context, studentID int64) ([]model.AttendanceEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.subject_name, a.att_date, a.status
		FROM attendance a
		JOIN subject s ON a.subject_id = s.subject_id
		WHERE a.student_id = $1
		ORDER BY a.att_date DESC, s.subject_name
	`, studentID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var entries []model.AttendanceEntry
	for rows.Next() {
		var e model.AttendanceEntry
		if err := rows.Scan(&e.SubjectName, &e.Date, &e.Status); err != nil {
			return nil, apperr.FromDB(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return entries, nil
}

// MarksFor returns the marks belonging to studentID, joined with the subject
// name, ordered by subject name.
func (r *Repository) MarksFor(ctx context.Context, studentID int64) ([]model.MarkEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.subject_name, m.marks
		FROM marks m
		JOIN subject s ON m.subject_id = s.subject_id
		WHERE m.student_id = $1
		ORDER BY s.subject_name
	`, studentID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var entries []model.MarkEntry
	for rows.Next() {
		var e model.MarkEntry
		if err := rows.Scan(&e.SubjectName, &e.Score); err != nil {
			return nil, apperr.FromDB(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return entries, nil
}

// InsertAttendance records one attendance mark. A duplicate
// (student, subject, date) or a dangling reference surfaces as ErrConstraint.
// Only the ingest worker writes here.
func (r *Repository) InsertAttendance(ctx context.Context, rec model.AttendanceRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (student_id, subject_id, att_date, status)
		VALUES ($1, $2, $3, $4)
	`, rec.StudentID, rec.SubjectID, rec.Date, rec.Status)
	return apperr.FromDB(err)
}

// UpsertMark records a score, replacing any previous score for the same
// (student, subject) pair. Only the ingest worker writes here.
func (r *Repository) UpsertMark(ctx context.Context, rec model.MarkRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO marks (student_id, subject_id, marks)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, subject_id) DO UPDATE SET marks = EXCLUDED.marks
	`, rec.StudentID, rec.SubjectID, rec.Score)
	return apperr.FromDB(err)
}
