package leaktest

import (
	"sync"
	"testing"
	"time"
)

// recorder captures failures so the checkers themselves can be tested
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()                           {}
func (r *recorder) Errorf(format string, args ...any) { r.failed = true }

func TestGoroutineChecker(t *testing.T) {
	t.Run("CASE 1: BEST CASE - finished goroutines are not leaks", func(t *testing.T) {
		CheckNoGoroutineLeak(t, func() {
			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					time.Sleep(time.Millisecond)
				}()
			}
			wg.Wait()
		})
	})

	t.Run("CASE 2: a blocked goroutine is reported", func(t *testing.T) {
		rec := &recorder{TB: t}
		checker := NewGoroutineChecker(rec)

		done := make(chan struct{})
		go func() { <-done }()
		defer close(done)

		checker.Check(0)
		if !rec.failed {
			t.Fatal("expected a leak to be reported")
		}
	})

	t.Run("CASE 3: tolerance absorbs known background work", func(t *testing.T) {
		checker := NewGoroutineChecker(t)
		done := make(chan struct{})
		go func() { <-done }()
		defer close(done)

		checker.Check(1)
	})
}

func TestMemoryChecker(t *testing.T) {
	CheckNoMemoryLeak(t, 1.0, func() {
		buf := make([]byte, 1024)
		_ = buf
	})

	rec := &recorder{TB: t}
	checker := NewMemoryChecker(rec)
	retained := make([]byte, 8<<20)
	checker.Check(1.0)
	if !rec.failed {
		t.Fatal("expected heap growth to be reported")
	}
	_ = retained[len(retained)-1]
}
