package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkordes/travel-tracker/internal/metrics"
)

// flushTimeout bounds a timer-driven save, which has no caller context.
const flushTimeout = 30 * time.Second

// Autosaver debounces persistence: each Schedule restarts a fixed delay, and
// the save runs once the delay passes with no further Schedule calls.
// A failed save leaves the state dirty so the next flush retries it.
type Autosaver struct {
	delay   time.Duration
	save    func(ctx context.Context) error
	log     *slog.Logger
	metrics *metrics.Metrics

	saveMu sync.Mutex // serializes save calls

	mu    sync.Mutex
	timer *time.Timer
	dirty bool
}

// NewAutosaver returns an Autosaver that calls save delay after the last
// Schedule. log defaults to slog.Default(); m may be nil.
func NewAutosaver(delay time.Duration, save func(ctx context.Context) error, log *slog.Logger, m *metrics.Metrics) *Autosaver {
	if log == nil {
		log = slog.Default()
	}
	return &Autosaver{delay: delay, save: save, log: log, metrics: m}
}

// Schedule marks the state dirty and restarts the debounce timer.
func (a *Autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.dirty = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Dirty reports whether there are changes not yet saved.
func (a *Autosaver) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

// Flush cancels any pending timer and saves now if the state is dirty.
func (a *Autosaver) Flush(ctx context.Context) error {
	return a.flush(ctx, false)
}

// SaveNow cancels any pending timer and saves unconditionally.
func (a *Autosaver) SaveNow(ctx context.Context) error {
	return a.flush(ctx, true)
}

func (a *Autosaver) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	// Errors are logged and counted inside flush.
	_ = a.flush(ctx, false)
}

func (a *Autosaver) flush(ctx context.Context, force bool) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if !a.dirty && !force {
		a.mu.Unlock()
		return nil
	}
	a.dirty = false
	a.mu.Unlock()

	err := a.save(ctx)
	a.metrics.Autosave(err)
	if err != nil {
		a.mu.Lock()
		a.dirty = true
		a.mu.Unlock()
		a.log.ErrorContext(ctx, "saving travel data failed", "error", err)
		return err
	}
	a.log.DebugContext(ctx, "travel data saved")
	return nil
}
