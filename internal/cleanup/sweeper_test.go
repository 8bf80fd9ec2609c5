package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeArtifactStore struct {
	mu     sync.Mutex
	sweeps int
}

func (f *fakeArtifactStore) Save(ctx context.Context, name string, data []byte) error { return nil }
func (f *fakeArtifactStore) Open(ctx context.Context, name string) ([]byte, error)    { return nil, nil }
func (f *fakeArtifactStore) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps++
	return 0, nil
}

func (f *fakeArtifactStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sweeps
}

func TestNewSweeper_IntervalFloor(t *testing.T) {
	s := NewSweeper(&fakeArtifactStore{}, time.Hour)
	if s.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", s.interval)
	}

	s = NewSweeper(&fakeArtifactStore{}, time.Minute)
	if s.interval != time.Minute {
		t.Errorf("interval = %v, want the 1m floor", s.interval)
	}
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	fake := &fakeArtifactStore{}
	s := NewSweeper(fake, time.Hour)
	s.interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
	if fake.count() == 0 {
		t.Error("sweeper never swept")
	}
}
