package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := New(context.Background(), 2)
	var ran int32
	for i := 0; i < 10; i++ {
		p.Go(func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ran != 10 {
		t.Errorf("got %d completed tasks; want 10", ran)
	}
}

func TestPool_WaitSurfacesFirstError(t *testing.T) {
	p := New(context.Background(), 1)
	boom := errors.New("boom")
	p.Go(func(ctx context.Context) error { return boom })
	if err := p.Wait(); !errors.Is(err, boom) {
		t.Errorf("got %v; want %v", err, boom)
	}
}
