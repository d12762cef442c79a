package sequence

import (
	"sync"
	"testing"
)

func TestNextStartsAtConfiguredValue(t *testing.T) {
	g := New(100)
	if got := g.Next(); got != 100 {
		t.Fatalf("expected first id 100, got %d", got)
	}
	if got := g.Next(); got != 101 {
		t.Fatalf("expected second id 101, got %d", got)
	}
}

func TestNextStrictlyIncreasing(t *testing.T) {
	g := New(100)
	prev := g.Next()
	for i := 0; i < 1_000; i++ {
		id := g.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestNextUniqueUnderConcurrency(t *testing.T) {
	g := New(1)

	const workers = 16
	const perWorker = 500

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}
