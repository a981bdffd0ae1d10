package simulate

import (
	"testing"
	"time"
)

func TestProgressCountersAccumulate(t *testing.T) {
	p := NewProgress(10)
	p.Completed()
	p.Completed()
	p.Retried()

	if p.completed.Load() != 2 {
		t.Errorf("completed = %d, want 2", p.completed.Load())
	}
	if p.retries.Load() != 1 {
		t.Errorf("retries = %d, want 1", p.retries.Load())
	}
}

func TestProgressRunReturnsWhenDoneCloses(t *testing.T) {
	p := NewProgress(5)
	done := make(chan struct{})
	close(done)

	finished := make(chan struct{})
	go func() {
		p.Run(done)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return promptly once done was already closed")
	}
}
