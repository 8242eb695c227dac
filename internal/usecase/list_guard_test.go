package usecase

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestListGuard(t *testing.T) {
	g := NewListGuard()

	if err := g.TryAcquire(1, "optimize"); err != nil {
		t.Fatalf("expected acquire, got %v", err)
	}
	err := g.TryAcquire(1, "substitution review")
	if !errors.Is(err, ErrListBusy) {
		t.Fatalf("expected ErrListBusy, got %v", err)
	}
	if !strings.Contains(err.Error(), "optimize") {
		t.Fatalf("expected holder in message, got %q", err.Error())
	}
	if err := g.TryAcquire(2, "optimize"); err != nil {
		t.Fatalf("other lists must not be blocked, got %v", err)
	}

	g.Release(1)
	if _, busy := g.Holder(1); busy {
		t.Fatalf("expected list 1 released")
	}
	if err := g.TryAcquire(1, "substitution review"); err != nil {
		t.Fatalf("expected acquire after release, got %v", err)
	}
}

func TestListGuard_Concurrent(t *testing.T) {
	g := NewListGuard()
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire(7, "optimize") == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if won != 1 {
		t.Fatalf("expected exactly one winner, got %d", won)
	}
}
