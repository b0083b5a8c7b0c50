// Package timer implements the per-step countdown used during the step
// walkthrough. A countdown is ephemeral: leaving the step cancels it and
// nothing about it is persisted.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
)

// State of a countdown.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Option configures the countdown.
type Option func(*Countdown)

// WithTickInterval sets how often the countdown updates. Tests use short
// intervals.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tickInterval = d
	}
}

// Snapshot is one observed countdown moment, published on every tick.
type Snapshot struct {
	Label     string
	Remaining time.Duration
	State     State
}

// Countdown counts a step duration down to zero and fires the notifier
// exactly once when it gets there. Safe for concurrent use.
type Countdown struct {
	label        string
	duration     time.Duration
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration

	mu        sync.Mutex
	state     State
	remaining time.Duration
	cancel    context.CancelFunc

	updates chan Snapshot
}

// New creates a countdown for the given duration. The notifier may be nil
// when no completion signal is wanted.
func New(label string, duration time.Duration, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		label:        label,
		duration:     duration,
		notifier:     notifier,
		log:          log,
		tickInterval: 1 * time.Second,
		remaining:    duration,
		updates:      make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Updates delivers a snapshot per tick and one final snapshot on finish.
// The channel is closed when the countdown stops for any reason.
func (c *Countdown) Updates() <-chan Snapshot {
	return c.updates
}

// Start begins counting down. Non-blocking; cancelling ctx stops the
// countdown without firing. Starting twice is a no-op.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		c.log.Warn("countdown %q already started", c.label)
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = StateRunning
	c.log.Debug("countdown %q started (%s)", c.label, c.duration)

	go c.loop(childCtx)
}

// Stop cancels a running countdown without firing the notifier.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// State returns the current countdown state.
func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) loop(ctx context.Context) {
	defer close(c.updates)

	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if c.state == StateRunning {
				c.state = StateIdle
			}
			c.mu.Unlock()
			c.log.Debug("countdown %q cancelled", c.label)
			return
		case <-ticker.C:
			if c.tick(ctx) {
				return
			}
		}
	}
}

// tick decrements once and reports whether the countdown finished.
func (c *Countdown) tick(ctx context.Context) (finished bool) {
	c.mu.Lock()
	c.remaining -= c.tickInterval
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = StateFinished
		finished = true
	}
	snap := Snapshot{Label: c.label, Remaining: c.remaining, State: c.state}
	c.mu.Unlock()

	c.publish(snap)

	if finished {
		c.log.Debug("countdown %q finished", c.label)
		if c.notifier != nil {
			msg := fmt.Sprintf("Time's up: %s", c.label)
			if err := c.notifier.NotifyUrgent(ctx, msg); err != nil {
				c.log.Error("countdown %q: notify: %v", c.label, err)
			}
		}
	}
	return finished
}

// publish sends without blocking, dropping the oldest snapshot when the
// consumer lags. Only the latest moment matters for display.
func (c *Countdown) publish(snap Snapshot) {
	for {
		select {
		case c.updates <- snap:
			return
		default:
			select {
			case <-c.updates:
			default:
			}
		}
	}
}

// FormatRemaining renders a countdown as M:SS for display.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
