// Package tracker records safety content views in the background so the
// request that triggered them never waits on the write.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type viewRecorder interface {
	RecordView(ctx context.Context, v domain.SafetyView) error
}

// Config holds tracker settings.
type Config struct {
	// QueueSize bounds the number of pending views. Default: 1024
	QueueSize int
	// Workers is the number of concurrent writers. Default: 2
	Workers int
	// WriteTimeout bounds each database write. Default: 5s
	WriteTimeout time.Duration
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() Config {
	return Config{
		QueueSize:    1024,
		Workers:      2,
		WriteTimeout: 5 * time.Second,
	}
}

// Tracker is a bounded queue of view records drained by a fixed worker pool.
type Tracker struct {
	rec viewRecorder
	cfg Config
	log *slog.Logger

	queue chan domain.SafetyView

	mu     sync.RWMutex
	closed bool

	started atomic.Bool
	dropped atomic.Int64
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a tracker. Zero config values fall back to DefaultConfig.
func New(log *slog.Logger, rec viewRecorder, cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	return &Tracker{
		rec:   rec,
		cfg:   cfg,
		log:   log.With("service", "tracker"),
		queue: make(chan domain.SafetyView, cfg.QueueSize),
	}
}

// Start launches the workers. The context bounds their lifetime.
func (t *Tracker) Start(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return errors.New("tracker already started")
	}

	ctx, t.cancel = context.WithCancel(ctx)

	t.wg.Add(t.cfg.Workers)
	for range t.cfg.Workers {
		go t.run(ctx)
	}

	t.log.Info("tracker started",
		slog.Int("workers", t.cfg.Workers),
		slog.Int("queue_size", t.cfg.QueueSize),
	)
	return nil
}

// Track enqueues a view without blocking. It reports false when the view was
// dropped because the queue is full or the tracker has stopped.
func (t *Tracker) Track(v domain.SafetyView) bool {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		t.drop(v, "stopped")
		return false
	}

	select {
	case t.queue <- v:
		return true
	default:
		t.drop(v, "queue full")
		return false
	}
}

// Dropped returns how many views have been discarded.
func (t *Tracker) Dropped() int64 {
	return t.dropped.Load()
}

// Stats is a point-in-time snapshot of the tracker.
type Stats struct {
	Running bool
	Pending int
	Dropped int64
}

// Stats reports whether the workers are accepting views, the queue depth and
// the number of dropped views.
func (t *Tracker) Stats() Stats {
	t.mu.RLock()
	closed := t.closed
	t.mu.RUnlock()

	return Stats{
		Running: t.started.Load() && !closed,
		Pending: len(t.queue),
		Dropped: t.dropped.Load(),
	}
}

// Stop refuses new views, drains the queue and waits for the workers.
// If ctx expires first, in-flight writes are cancelled and ctx.Err() is returned.
func (t *Tracker) Stop(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.queue)
	t.mu.Unlock()

	if !t.started.Load() {
		return nil
	}

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.cancel()
		t.log.Info("tracker stopped", slog.Int64("dropped", t.dropped.Load()))
		return nil
	case <-ctx.Done():
		t.cancel()
		<-done
		t.log.Warn("tracker stop deadline exceeded", slog.Int64("dropped", t.dropped.Load()))
		return ctx.Err()
	}
}

func (t *Tracker) run(ctx context.Context) {
	defer t.wg.Done()

	for v := range t.queue {
		t.write(ctx, v)
	}
}

func (t *Tracker) write(ctx context.Context, v domain.SafetyView) {
	if ctx.Err() != nil {
		t.drop(v, "cancelled")
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, t.cfg.WriteTimeout)
	defer cancel()

	if err := t.rec.RecordView(writeCtx, v); err != nil {
		t.log.Warn("view not recorded",
			slog.String("content_type", v.ContentType.String()),
			slog.String("content_id", v.ContentID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (t *Tracker) drop(v domain.SafetyView, reason string) {
	t.dropped.Add(1)
	t.log.Warn("view dropped",
		slog.String("content_id", v.ContentID.String()),
		slog.String("reason", reason),
	)
}
