package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	msgs, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}

	body, _ := json.Marshal(map[string]int{"student_id": 1, "subject_id": 2})
	if err := q.Publish(ctx, Message{Type: TypeAttendance, Body: body}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case got := <-msgs:
		if got.Type != TypeAttendance {
			t.Errorf("Type = %q, want %q", got.Type, TypeAttendance)
		}
		if string(got.Body) != string(body) {
			t.Errorf("Body = %s, want %s", got.Body, body)
		}
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestInMemoryPublishHonorsCancel(t *testing.T) {
	q := NewInMemory(1)
	ctx, cancel := context.WithCancel(context.Background())

	// Fill the buffer, then cancel; the next publish must not block forever.
	if err := q.Publish(ctx, Message{Type: TypeMark}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	cancel()
	if err := q.Publish(ctx, Message{Type: TypeMark}); err == nil {
		t.Fatal("Publish after cancel returned nil, want context error")
	}
}

func TestConsumeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewInMemory(1)
	msgs, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	cancel()
	select {
	case _, open := <-msgs:
		if open {
			t.Fatal("channel delivered after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
