package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
)

// ErrFailureBudgetExceeded is reported by Err when consecutive fetch
// failures exhaust the configured budget.
var ErrFailureBudgetExceeded = errors.New("poller: failure budget exceeded")

// State describes where a watcher is in its lifecycle.
type State int

const (
	// StateIdle means Start has not been called yet.
	StateIdle State = iota
	// StatePolling means the watcher is actively fetching.
	StatePolling
	// StateReacted means a registered reaction fired and polling ended.
	StateReacted
	// StateStopped means polling ended without a reaction firing.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StatePolling:
		return "POLLING"
	case StateReacted:
		return "REACTED"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is one observed remote state.
type Snapshot struct {
	Status models.RequestStatus
	Data   interface{}
}

// FetchFunc retrieves the current remote state.
type FetchFunc func(ctx context.Context) (Snapshot, error)

// ReactionFunc runs exactly once when its status is first observed.
type ReactionFunc func(snap Snapshot)

// ObserveFunc runs on every successful fetch.
type ObserveFunc func(snap Snapshot)

// Config holds watcher parameters.
type Config struct {
	Interval      time.Duration
	FailureBudget int // consecutive fetch failures tolerated before giving up
}

// DefaultConfig matches the cadence the mobile screens poll at.
func DefaultConfig() Config {
	return Config{
		Interval:      5 * time.Second,
		FailureBudget: 12,
	}
}

// Watcher polls a remote state at a fixed interval and dispatches reactions
// when watched statuses appear. Each reaction fires at most once no matter
// how many consecutive polls observe its status. Terminal statuses stop the
// watcher even when no reaction is registered for them, and fetch results
// arriving after the watcher has stopped are discarded.
type Watcher struct {
	config Config
	fetch  FetchFunc
	logger *logger.ZapLogger

	mu        sync.Mutex
	state     State
	reactions map[models.RequestStatus]*reaction
	observers []ObserveFunc
	failures  int
	err       error

	cancel context.CancelFunc
	done   chan struct{}
}

type reaction struct {
	fn        ReactionFunc
	stopAfter bool
	fired     bool
}

// New creates a watcher. Reactions and observers must be registered before
// Start.
func New(config Config, fetch FetchFunc, log *logger.ZapLogger) *Watcher {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	if config.FailureBudget <= 0 {
		config.FailureBudget = DefaultConfig().FailureBudget
	}
	return &Watcher{
		config:    config,
		fetch:     fetch,
		logger:    log,
		state:     StateIdle,
		reactions: make(map[models.RequestStatus]*reaction),
		done:      make(chan struct{}),
	}
}

// On registers fn to run once when status is first observed; polling
// continues afterwards.
func (w *Watcher) On(status models.RequestStatus, fn ReactionFunc) *Watcher {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reactions[status] = &reaction{fn: fn}
	return w
}

// OnFinal registers fn like On and additionally ends polling after it fires.
// This is what a screen does when it tears its interval down before
// navigating away.
func (w *Watcher) OnFinal(status models.RequestStatus, fn ReactionFunc) *Watcher {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reactions[status] = &reaction{fn: fn, stopAfter: true}
	return w
}

// Observe registers fn to run on every successful fetch.
func (w *Watcher) Observe(fn ObserveFunc) *Watcher {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
	return w
}

// Start begins polling. The first fetch happens immediately, then every
// interval. Start returns once the polling goroutine is launched.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.state != StateIdle {
		w.mu.Unlock()
		return
	}
	w.state = StatePolling
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	go w.run(ctx)
}

// Stop ends polling without firing any reaction. Safe to call from
// reactions and observers, and more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.state == StatePolling {
		w.state = StateStopped
	}
	cancel := w.cancel
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Done is closed once the polling goroutine has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Err reports why polling ended, or nil for a clean stop or reaction.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.cancel()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.state == StatePolling {
				w.state = StateStopped
			}
			w.mu.Unlock()
			return
		case <-ticker.C:
			if !w.tick(ctx) {
				return
			}
		}
	}
}

// tick performs one fetch/dispatch cycle. It returns false when polling
// should end.
func (w *Watcher) tick(ctx context.Context) bool {
	snap, err := w.fetch(ctx)

	w.mu.Lock()
	// The fetch may have raced a Stop or a reaction from a previous tick;
	// results arriving after the watcher left the polling state are
	// discarded.
	if w.state != StatePolling {
		w.mu.Unlock()
		return false
	}

	if err != nil {
		w.failures++
		failures := w.failures
		budget := w.config.FailureBudget
		if failures >= budget {
			w.state = StateStopped
			w.err = ErrFailureBudgetExceeded
			w.mu.Unlock()
			w.logger.Error("polling aborted, failure budget exhausted",
				logger.Int("failures", failures),
				logger.Err(err))
			return false
		}
		w.mu.Unlock()
		w.logger.Warn("fetch failed, will retry next tick",
			logger.Int("consecutive_failures", failures),
			logger.Int("budget", budget),
			logger.Err(err))
		return true
	}
	w.failures = 0

	observers := make([]ObserveFunc, len(w.observers))
	copy(observers, w.observers)

	var fire ReactionFunc
	if r, ok := w.reactions[snap.Status]; ok && !r.fired {
		r.fired = true
		fire = r.fn
		if r.stopAfter {
			w.state = StateReacted
		}
	}
	if w.state == StatePolling && snap.Status.IsTerminal() {
		w.state = StateStopped
	}
	ended := w.state != StatePolling
	w.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	if fire != nil {
		fire(snap)
	}
	return !ended
}
