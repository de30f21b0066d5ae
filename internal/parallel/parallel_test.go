package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRangeCoversDisjointChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}
	n := 101
	hits := make([]int32, n)

	var mu sync.Mutex
	var chunks int
	ForRange(n, func(lo, hi int) {
		mu.Lock()
		chunks++
		mu.Unlock()
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("element %d visited %d times", i, h)
		}
	}
	if chunks != 3 {
		t.Errorf("Expected 3 chunks, got %d", chunks)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Sequential()

	calls := 0
	ForRange(100, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 100 {
			t.Errorf("Expected [0, 100), got [%d, %d)", lo, hi)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to a single call.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	calls := 0
	ForRange(cfg.MinChunkSize, func(_, _ int) {
		calls++
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestForRange_Empty(t *testing.T) {
	ForRange(0, func(_, _ int) {
		t.Fatal("must not be called for n == 0")
	}, DefaultConfig())
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 1024
	data := make([]float64, 1<<20)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(len(data), func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] += 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(len(data), func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] += 1
				}
			}, Sequential())
		}
	})
}
