package scheduler

import (
	"testing"
	"time"
)

func TestNewEngineRejectsBadInterval(t *testing.T) {
	if _, err := NewEngine(0, 1); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := NewEngine(-time.Second, 1); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestEngineEmitsImmediatelyThenOnInterval(t *testing.T) {
	engine, err := NewEngine(30*time.Millisecond, 4)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	first := waitEvent(t, engine)
	if first.Seq != 1 || first.Manual {
		t.Fatalf("unexpected first event: %#v", first)
	}
	second := waitEvent(t, engine)
	if second.Seq != 2 {
		t.Fatalf("expected seq 2, got %d", second.Seq)
	}
	if !second.At.After(first.At) {
		t.Fatalf("event times not increasing: %v then %v", first.At, second.At)
	}
}

func TestEngineKick(t *testing.T) {
	engine, err := NewEngine(time.Hour, 4)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	waitEvent(t, engine)

	engine.Kick()
	got := waitEvent(t, engine)
	if !got.Manual {
		t.Fatalf("expected a manual event, got %#v", got)
	}
}

func TestEngineStopClosesStream(t *testing.T) {
	engine, err := NewEngine(time.Hour, 1)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Start()
	waitEvent(t, engine)
	engine.Stop()
	engine.Stop() // idempotent

	select {
	case _, ok := <-engine.C():
		if ok {
			t.Fatal("expected closed channel after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("stream not closed after Stop")
	}
}

func TestEngineDropsWhenConsumerLags(t *testing.T) {
	engine, err := NewEngine(5*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	deadline := time.After(2 * time.Second)
	for engine.Dropped() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected drops with a stalled consumer")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// The buffered event is still the consumable one.
	waitEvent(t, engine)
}

func waitEvent(t *testing.T, engine *Engine) RefreshEvent {
	t.Helper()
	select {
	case ev, ok := <-engine.C():
		if !ok {
			t.Fatal("event stream closed unexpectedly")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return RefreshEvent{}
	}
}
