package timer

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/kbenhamou/souschef/internal/logger"
)

type mockNotifier struct {
	mu     sync.Mutex
	normal []string
	urgent []string
}

func (m *mockNotifier) Notify(ctx context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.normal = append(m.normal, msg)
	return nil
}

func (m *mockNotifier) NotifyUrgent(ctx context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgent = append(m.urgent, msg)
	return nil
}

func (m *mockNotifier) urgentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.urgent)
}

func testLogger() *logger.Logger {
	return logger.New(logger.LevelOff, io.Discard)
}

func waitState(t *testing.T, c *Countdown, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("countdown never reached state %v (at %v)", want, c.State())
}

func TestCountdownFiresOnceAtZero(t *testing.T) {
	notifier := &mockNotifier{}
	c := New("Simmer", 50*time.Millisecond, notifier, testLogger(), WithTickInterval(10*time.Millisecond))

	c.Start(context.Background())
	waitState(t, c, StateFinished)

	// Give a potential duplicate fire time to happen.
	time.Sleep(50 * time.Millisecond)
	if got := notifier.urgentCount(); got != 1 {
		t.Fatalf("notifier fired %d times, want exactly 1", got)
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining = %v after finish", c.Remaining())
	}
}

func TestCountdownCancelDoesNotFire(t *testing.T) {
	notifier := &mockNotifier{}
	c := New("Simmer", time.Hour, notifier, testLogger(), WithTickInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	waitState(t, c, StateIdle)

	if got := notifier.urgentCount(); got != 0 {
		t.Fatalf("cancelled countdown fired %d times", got)
	}
}

func TestCountdownStop(t *testing.T) {
	notifier := &mockNotifier{}
	c := New("Simmer", time.Hour, notifier, testLogger(), WithTickInterval(10*time.Millisecond))

	c.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	c.Stop()
	waitState(t, c, StateIdle)

	if got := notifier.urgentCount(); got != 0 {
		t.Fatalf("stopped countdown fired %d times", got)
	}
}

func TestCountdownUpdatesCloseOnFinish(t *testing.T) {
	c := New("Rest", 30*time.Millisecond, nil, testLogger(), WithTickInterval(10*time.Millisecond))
	c.Start(context.Background())

	var last Snapshot
	for snap := range c.Updates() {
		last = snap
	}
	if last.State != StateFinished || last.Remaining != 0 {
		t.Fatalf("final snapshot = %+v", last)
	}
}

func TestCountdownDoubleStartIsNoop(t *testing.T) {
	c := New("Rest", time.Hour, nil, testLogger(), WithTickInterval(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Start(ctx)
	c.Start(ctx)
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-5 * time.Second, "0:00"},
		{9 * time.Second, "0:09"},
		{90 * time.Second, "1:30"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
