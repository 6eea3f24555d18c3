package records

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"campussync/internal/apperr"
	"campussync/internal/model"
	"campussync/internal/queue"
)

type fakeWriter struct {
	attendance []model.AttendanceRecord
	marks      []model.MarkRecord
	err        error
}

func (f *fakeWriter) InsertAttendance(_ context.Context, rec model.AttendanceRecord) error {
	if f.err != nil {
		return f.err
	}
	f.attendance = append(f.attendance, rec)
	return nil
}

func (f *fakeWriter) UpsertMark(_ context.Context, rec model.MarkRecord) error {
	if f.err != nil {
		return f.err
	}
	f.marks = append(f.marks, rec)
	return nil
}

func msg(t *testing.T, typ string, payload any) queue.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return queue.Message{Type: typ, Body: raw}
}

func TestApplyAttendance(t *testing.T) {
	w := &fakeWriter{}
	ing := NewIngestor(w)

	err := ing.Apply(context.Background(), msg(t, queue.TypeAttendance, map[string]any{
		"student_id": 7, "subject_id": 2, "date": "2026-03-14", "status": "present",
	}))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(w.attendance) != 1 {
		t.Fatalf("attendance rows = %d, want 1", len(w.attendance))
	}
	got := w.attendance[0]
	want := model.AttendanceRecord{
		StudentID: 7, SubjectID: 2,
		Date:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Status: "present",
	}
	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestApplyMark(t *testing.T) {
	w := &fakeWriter{}
	ing := NewIngestor(w)

	err := ing.Apply(context.Background(), msg(t, queue.TypeMark, map[string]any{
		"student_id": 7, "subject_id": 2, "score": 91,
	}))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(w.marks) != 1 || w.marks[0].Score != 91 {
		t.Errorf("marks = %+v", w.marks)
	}
}

func TestApplyRejectsBadMessages(t *testing.T) {
	w := &fakeWriter{}
	ing := NewIngestor(w)

	cases := []queue.Message{
		{Type: "grade", Body: []byte(`{}`)},
		{Type: queue.TypeAttendance, Body: []byte(`not json`)},
		msg(t, queue.TypeAttendance, map[string]any{"student_id": 7, "subject_id": 2, "date": "14/03/2026", "status": "present"}),
		msg(t, queue.TypeAttendance, map[string]any{"student_id": 7, "date": "2026-03-14", "status": "present"}),
		msg(t, queue.TypeMark, map[string]any{"subject_id": 2, "score": 10}),
	}
	for i, m := range cases {
		if err := ing.Apply(context.Background(), m); !errors.Is(err, apperr.ErrMalformedInput) {
			t.Errorf("case %d: err = %v, want ErrMalformedInput", i, err)
		}
	}
	if len(w.attendance)+len(w.marks) != 0 {
		t.Error("bad message reached the writer")
	}
}

func TestApplyPassesStorageErrorsThrough(t *testing.T) {
	w := &fakeWriter{err: apperr.ErrConstraint}
	ing := NewIngestor(w)

	err := ing.Apply(context.Background(), msg(t, queue.TypeMark, map[string]any{
		"student_id": 7, "subject_id": 2, "score": 91,
	}))
	if !errors.Is(err, apperr.ErrConstraint) {
		t.Errorf("err = %v, want ErrConstraint", err)
	}
}
