package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_RunsAndStops(t *testing.T) {
	s := New()
	var runs atomic.Int32
	stopped := make(chan struct{})

	if err := s.Add("tick", "@every 1s", func(ctx context.Context) {
		runs.Add(1)
		<-ctx.Done()
		close(stopped)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()

	deadline := time.After(3 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("job never ran")
		case <-time.After(50 * time.Millisecond):
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Stop(ctx)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatalf("job context was not cancelled")
	}
}

func TestScheduler_InvalidSpec(t *testing.T) {
	if err := New().Add("bad", "every now and then", func(context.Context) {}); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}
