package chime

import (
	"context"
	"fmt"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*Notifier)(nil)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
	bell  = "\a"
)

// PrintFunc prints formatted output. Matches the signature of fmt.Printf.
type PrintFunc func(format string, a ...interface{})

// Notifier writes notifications to the terminal and, when an audio device
// is present, plays a tone for urgent ones.
type Notifier struct {
	log     *logger.Logger
	printFn PrintFunc
	player  *Player // nil when audio is unavailable
}

// NewNotifier creates a terminal notifier. player may be nil; printFn
// defaults to fmt.Printf.
func NewNotifier(log *logger.Logger, player *Player, printFn PrintFunc) *Notifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &Notifier{log: log, printFn: printFn, player: player}
}

// Notify prints a normal notification with the terminal bell.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s%s%s%s%s", cyan, bold, message, reset, bell)
	return nil
}

// NotifyUrgent prints in bold red and plays the alert tone when audio is
// available. Playback failure degrades to the bell, never to an error.
func (n *Notifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s%s%s%s%s", red, bold, message, reset, bell)
	if n.player != nil {
		go func() {
			if err := n.player.Alert(); err != nil {
				n.log.Warn("chime playback failed: %v", err)
			}
		}()
	}
	return nil
}
