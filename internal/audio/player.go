package audio

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays a Sweep through the default output device.
// The device is opened on first Play; only one oto context may exist per
// process, so a Player should be shared.
type Player struct {
	sweep      Sweep
	sampleRate int

	once  sync.Once
	ctx   *oto.Context
	ready chan struct{}
	err   error

	// newContext is swapped in tests.
	newContext func(*oto.NewContextOptions) (*oto.Context, chan struct{}, error)
}

// NewPlayer creates a player for sweep. The device is not touched until Play.
func NewPlayer(sweep Sweep) *Player {
	return &Player{
		sweep:      sweep,
		sampleRate: DefaultSampleRate,
		newContext: oto.NewContext,
	}
}

// Play starts the cue and returns without waiting for it to finish.
// Errors surfacing after Play returns are logged.
func (p *Player) Play() error {
	if err := p.open(); err != nil {
		return err
	}
	samples := p.sweep.Samples(p.sampleRate)
	if len(samples) == 0 {
		return &PlaybackError{Op: "render", Err: errors.New("empty sweep")}
	}
	go p.play(EncodeFloat32LE(samples), p.sweep.Duration)
	return nil
}

func (p *Player) open() error {
	p.once.Do(func() {
		ctx, ready, err := p.newContext(&oto.NewContextOptions{
			SampleRate:   p.sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			p.err = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		p.ctx = ctx
		p.ready = ready
	})
	return p.err
}

func (p *Player) play(pcm []byte, length time.Duration) {
	<-p.ready
	if err := p.ctx.Err(); err != nil {
		log.Printf("audio: %v", &PlaybackError{Op: "open", Err: err})
		return
	}
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	deadline := time.Now().Add(length + time.Second)
	for player.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if err := player.Err(); err != nil {
		log.Printf("audio: %v", &PlaybackError{Op: "play", Err: err})
	}
}
