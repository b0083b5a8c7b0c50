// Package chime produces the audible and visual completion signals for
// countdown timers. Audio is optional: when no output device is available
// the notifier falls back to the terminal bell alone.
package chime

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/kbenhamou/souschef/internal/logger"
)

// Playback parameters for the generated tones.
const (
	SampleRate   = 24000
	ChannelCount = 1

	toneFrequency = 880.0
	toneDuration  = 150 * time.Millisecond
	toneGap       = 80 * time.Millisecond
)

// Player synthesizes and plays short sine tones via the system audio
// device.
type Player struct {
	ctx *oto.Context
	log *logger.Logger
	mu  sync.Mutex
}

// NewPlayer initializes the system audio context. Returns an error when no
// audio device is available; callers are expected to degrade to silent
// operation rather than fail.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("chime player initialized (rate=%d)", SampleRate)
	return &Player{ctx: ctx, log: log}, nil
}

// Chime plays a single short tone. Blocks until playback finishes.
func (p *Player) Chime() error {
	return p.play(1)
}

// Alert plays three tones in a row, the completion signal for a finished
// countdown.
func (p *Player) Alert() error {
	return p.play(3)
}

func (p *Player) play(count int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pcm := tonePCM(count)
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	p.log.Debug("chime: played %d tones (%d bytes)", count, len(pcm))
	return player.Close()
}

// tonePCM renders count sine bursts with short gaps as 16-bit mono PCM.
func tonePCM(count int) []byte {
	toneSamples := int(float64(SampleRate) * toneDuration.Seconds())
	gapSamples := int(float64(SampleRate) * toneGap.Seconds())

	var buf bytes.Buffer
	for i := 0; i < count; i++ {
		for n := 0; n < toneSamples; n++ {
			// Linear fade at both edges avoids clicks.
			amp := 0.6
			fade := toneSamples / 10
			if n < fade {
				amp *= float64(n) / float64(fade)
			} else if n > toneSamples-fade {
				amp *= float64(toneSamples-n) / float64(fade)
			}
			v := amp * math.Sin(2*math.Pi*toneFrequency*float64(n)/SampleRate)
			binary.Write(&buf, binary.LittleEndian, int16(v*math.MaxInt16))
		}
		if i < count-1 {
			buf.Write(make([]byte, gapSamples*2))
		}
	}
	return buf.Bytes()
}
