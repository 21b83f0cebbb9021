package audio

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootSweep_Frequency(t *testing.T) {
	s := BootSweep
	assert.Equal(t, 100.0, s.Frequency(0))
	assert.InDelta(t, math.Sqrt(100*800), s.Frequency(250*time.Millisecond), 1e-6)
	assert.Equal(t, 800.0, s.Frequency(500*time.Millisecond))
	assert.Equal(t, 800.0, s.Frequency(time.Second))
}

func TestBootSweep_Gain(t *testing.T) {
	s := BootSweep
	assert.Equal(t, 0.0, s.Gain(0))
	assert.InDelta(t, 0.15, s.Gain(50*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.3, s.Gain(100*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.01, s.Gain(1500*time.Millisecond), 1e-9)
	assert.Less(t, s.Gain(time.Second), s.Gain(500*time.Millisecond))
}

func TestBootSweep_Samples(t *testing.T) {
	samples := BootSweep.Samples(DefaultSampleRate)
	require.Len(t, samples, 66150)
	for i, v := range samples {
		if math.Abs(float64(v)) > 0.3+1e-6 {
			t.Fatalf("sample %d out of envelope: %v", i, v)
		}
	}
	assert.Nil(t, BootSweep.Samples(0))
}

func TestEncodeFloat32LE(t *testing.T) {
	buf := EncodeFloat32LE([]float32{0.5, -1})
	require.Len(t, buf, 8)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
}

func TestPlayer_UnavailableDevice(t *testing.T) {
	p := NewPlayer(BootSweep)
	calls := 0
	p.newContext = func(*oto.NewContextOptions) (*oto.Context, chan struct{}, error) {
		calls++
		return nil, nil, errors.New("no ALSA device")
	}

	err := p.Play()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no ALSA device")

	// The failure is remembered; the device is not probed again.
	assert.ErrorIs(t, p.Play(), ErrUnavailable)
	assert.Equal(t, 1, calls)
}

func TestPlaybackError_Unwrap(t *testing.T) {
	cause := errors.New("underrun")
	err := error(&PlaybackError{Op: "play", Err: cause})

	var pe *PlaybackError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "play", pe.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "audio play: underrun", err.Error())
}
