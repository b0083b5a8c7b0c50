package chime

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/kbenhamou/souschef/internal/logger"
)

func TestNotifierWritesStyledMessage(t *testing.T) {
	var out strings.Builder
	printFn := func(format string, a ...interface{}) {
		fmt.Fprintf(&out, format+"\n", a...)
	}
	n := NewNotifier(logger.New(logger.LevelOff, io.Discard), nil, printFn)

	if err := n.Notify(context.Background(), "stir the pot"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if !strings.Contains(out.String(), "stir the pot") {
		t.Fatalf("message missing from output: %q", out.String())
	}
	if !strings.Contains(out.String(), bell) {
		t.Fatal("expected terminal bell in output")
	}
}

func TestNotifyUrgentWithoutAudioDevice(t *testing.T) {
	var out strings.Builder
	printFn := func(format string, a ...interface{}) {
		fmt.Fprintf(&out, format+"\n", a...)
	}
	n := NewNotifier(logger.New(logger.LevelOff, io.Discard), nil, printFn)

	// A nil player must not panic; the bell still rings.
	if err := n.NotifyUrgent(context.Background(), "timer done"); err != nil {
		t.Fatalf("NotifyUrgent failed: %v", err)
	}
	if !strings.Contains(out.String(), red) {
		t.Fatal("urgent message should be styled red")
	}
}

func TestTonePCM(t *testing.T) {
	one := tonePCM(1)
	if len(one) == 0 || len(one)%2 != 0 {
		t.Fatalf("invalid PCM length %d", len(one))
	}
	three := tonePCM(3)
	if len(three) <= len(one)*2 {
		t.Fatalf("three tones (%d bytes) should be much longer than one (%d)", len(three), len(one))
	}
}
