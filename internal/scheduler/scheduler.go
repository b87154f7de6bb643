// Package scheduler drives recurring settlement passes. One scheduler
// owns one background goroutine; passes never overlap within a process
// because a tick that arrives while a pass is running is dropped, not
// queued.
package scheduler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"notesbytes_settlement/internal/metrics"
)

// PassFunc runs one settlement pass. Errors are logged and the next
// tick retries naturally; they never stop the scheduler.
type PassFunc func(ctx context.Context) error

type Scheduler struct {
	interval   time.Duration
	runOnStart bool
	pass       PassFunc

	running atomic.Bool
	stop    chan struct{}
	done    sync.WaitGroup
}

func New(interval time.Duration, runOnStart bool, pass PassFunc) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		interval:   interval,
		runOnStart: runOnStart,
		pass:       pass,
		stop:       make(chan struct{}),
	}
}

// Start launches the tick loop. It returns immediately; call Stop to
// shut the loop down.
func (s *Scheduler) Start(ctx context.Context) {
	s.done.Add(1)
	go func() {
		defer s.done.Done()
		log.Printf("[settlement][scheduler] started interval=%s", s.interval)

		if s.runOnStart {
			s.tick(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick(ctx)
			case <-s.stop:
				log.Printf("[settlement][scheduler] stopped")
				return
			case <-ctx.Done():
				log.Printf("[settlement][scheduler] context cancelled: %v", ctx.Err())
				return
			}
		}
	}()
}

// Stop halts the tick loop and waits for it to exit. A pass already in
// flight runs to completion; financial writes are never interrupted
// mid-entry.
func (s *Scheduler) Stop() {
	close(s.stop)
	s.done.Wait()
}

// tick runs one pass under the non-reentrant guard. The CAS is the
// no-overlap guarantee: if a previous pass is still running (ticker
// fired faster than a pass completes), the tick is skipped.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		log.Printf("[settlement][scheduler] previous pass still running, skipping tick")
		metrics.OverlapSkipsTotal.Inc()
		return
	}
	defer s.running.Store(false)

	if err := s.pass(ctx); err != nil {
		log.Printf("[settlement][scheduler] pass failed: %v", err)
	}
}
