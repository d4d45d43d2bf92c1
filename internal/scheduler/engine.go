// Package scheduler drives the periodic insight refresh. The engine owns a
// single goroutine that emits a RefreshEvent on a fixed cadence; consumers
// read from C(). Emission never blocks: if the consumer lags, events are
// dropped and counted, and the next tick simply supersedes them (last
// response wins at the consumer).
package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("scheduler: interval must be positive")

// RefreshEvent marks one due refresh. Seq increases per emission; At is the
// emission time.
type RefreshEvent struct {
	Seq    uint64
	At     time.Time
	Manual bool
}

type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	out      chan RefreshEvent
	kick     chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	seq      uint64
	dropped  uint64
}

func NewEngine(interval time.Duration, bufferSize int) (*Engine, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		interval: interval,
		out:      make(chan RefreshEvent, bufferSize),
		kick:     make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// C is the stream of due refreshes. It closes after Stop.
func (e *Engine) C() <-chan RefreshEvent {
	return e.out
}

// Start launches the engine goroutine and emits an immediate first event so
// consumers have an insight before the first interval elapses.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop shuts the engine down and waits for the goroutine to exit. Safe to
// call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Kick requests an out-of-cadence refresh, e.g. from a manual refresh key.
// Coalesced if one is already pending.
func (e *Engine) Kick() {
	select {
	case e.kick <- struct{}{}:
	default:
	}
}

// Dropped reports how many events were discarded because the consumer was
// not keeping up.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.emit(false)
	for {
		select {
		case <-ticker.C:
			e.emit(false)
		case <-e.kick:
			e.emit(true)
		case <-e.stopCh:
			return
		}
	}
}

func (e *Engine) emit(manual bool) {
	ev := RefreshEvent{
		Seq:    atomic.AddUint64(&e.seq, 1),
		At:     time.Now().UTC(),
		Manual: manual,
	}
	select {
	case e.out <- ev:
	default:
		atomic.AddUint64(&e.dropped, 1)
	}
}
