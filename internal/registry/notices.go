package registry

import (
	"context"
	"database/sql"

	"campussync/internal/apperr"
	"campussync/internal/model"
)

// Notices persists admin announcements.
type Notices struct {
	db *sql.DB
}

// NewNotices creates a repo.
func NewNotices(db *sql.DB) *Notices {
	return &Notices{db: db}
}

// Insert creates a notice; posted_at is set by the database and immutable.
func (r *Notices) Insert(ctx context.Context, title, message string) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO notice (title, message)
		VALUES ($1, $2)
		RETURNING notice_id
	`, title, message)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, apperr.FromDB(err)
	}
	return id, nil
}

// List returns all notices, most recent first.
func (r *Notices) List(ctx context.Context) ([]model.Notice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT notice_id, title, message, posted_at
		FROM notice
		ORDER BY posted_at DESC
	`)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.PostedAt); err != nil {
			return nil, apperr.FromDB(err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return notices, nil
}
