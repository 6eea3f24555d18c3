package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campussync/internal/apperr"
	"campussync/internal/model"
	"campussync/internal/queue"
)

// Writer is the mutation surface the ingest path needs.
type Writer interface {
	InsertAttendance(ctx context.Context, rec model.AttendanceRecord) error
	UpsertMark(ctx context.Context, rec model.MarkRecord) error
}

// Ingestor applies queued record-entry messages to the store. It is the
// process that fills the attendance and marks tables; the portal itself only
// reads them.
type Ingestor struct {
	w Writer
}

// NewIngestor creates an ingestor.
func NewIngestor(w Writer) *Ingestor {
	return &Ingestor{w: w}
}

type attendancePayload struct {
	StudentID int64  `json:"student_id"`
	SubjectID int64  `json:"subject_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Status    string `json:"status"`
}

type markPayload struct {
	StudentID int64 `json:"student_id"`
	SubjectID int64 `json:"subject_id"`
	Score     int   `json:"score"`
}

// Apply decodes and writes one message. Unknown types and undecodable
// payloads come back as ErrMalformedInput so the worker can log and drop
// them; storage errors pass through untouched.
func (i *Ingestor) Apply(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.TypeAttendance:
		var p attendancePayload
		if err := json.Unmarshal(msg.Body, &p); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrMalformedInput, err)
		}
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return fmt.Errorf("%w: bad date %q", apperr.ErrMalformedInput, p.Date)
		}
		if p.StudentID == 0 || p.SubjectID == 0 || p.Status == "" {
			return fmt.Errorf("%w: incomplete attendance payload", apperr.ErrMalformedInput)
		}
		return i.w.InsertAttendance(ctx, model.AttendanceRecord{
			StudentID: p.StudentID,
			SubjectID: p.SubjectID,
			Date:      date,
			Status:    p.Status,
		})

	case queue.TypeMark:
		var p markPayload
		if err := json.Unmarshal(msg.Body, &p); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrMalformedInput, err)
		}
		if p.StudentID == 0 || p.SubjectID == 0 {
			return fmt.Errorf("%w: incomplete mark payload", apperr.ErrMalformedInput)
		}
		return i.w.UpsertMark(ctx, model.MarkRecord{
			StudentID: p.StudentID,
			SubjectID: p.SubjectID,
			Score:     p.Score,
		})

	default:
		return fmt.Errorf("%w: unknown message type %q", apperr.ErrMalformedInput, msg.Type)
	}
}
