package httpmiddleware

import (
	"testing"
	"time"
)

func TestLimiterExhaustsAndRefills(t *testing.T) {
	clock := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	l := NewLoginLimiter(3, 3)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		if !l.allow("1.2.3.4") {
			t.Fatalf("attempt %d denied within capacity", i+1)
		}
	}
	if l.allow("1.2.3.4") {
		t.Fatal("attempt beyond capacity allowed")
	}

	// One minute later the bucket has refilled.
	clock = clock.Add(time.Minute)
	if !l.allow("1.2.3.4") {
		t.Fatal("attempt denied after refill window")
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLoginLimiter(1, 1)
	if !l.allow("10.0.0.1") {
		t.Fatal("first client denied")
	}
	if l.allow("10.0.0.1") {
		t.Fatal("first client not exhausted")
	}
	if !l.allow("10.0.0.2") {
		t.Fatal("second client throttled by first client's bucket")
	}
}
