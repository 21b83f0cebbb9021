// Package audio synthesizes and plays the boot cue.
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// DefaultSampleRate is the output rate used for the boot cue.
const DefaultSampleRate = 44100

// Sweep describes a sawtooth tone with an exponential pitch ramp and an
// attack/decay gain envelope.
type Sweep struct {
	StartHz  float64
	EndHz    float64
	Ramp     time.Duration // time to reach EndHz
	Peak     float64       // gain at the end of Attack
	Attack   time.Duration // linear rise from 0 to Peak
	Floor    float64       // gain reached at Duration
	Duration time.Duration // total length; output stops here
}

// BootSweep is the power-up sound played on wake.
var BootSweep = Sweep{
	StartHz:  100,
	EndHz:    800,
	Ramp:     500 * time.Millisecond,
	Peak:     0.3,
	Attack:   100 * time.Millisecond,
	Floor:    0.01,
	Duration: 1500 * time.Millisecond,
}

// Frequency returns the pitch in Hz at offset t.
func (s Sweep) Frequency(t time.Duration) float64 {
	if t <= 0 {
		return s.StartHz
	}
	if t >= s.Ramp {
		return s.EndHz
	}
	frac := t.Seconds() / s.Ramp.Seconds()
	return s.StartHz * math.Pow(s.EndHz/s.StartHz, frac)
}

// Gain returns the envelope amplitude at offset t.
func (s Sweep) Gain(t time.Duration) float64 {
	switch {
	case t <= 0:
		return 0
	case t < s.Attack:
		return s.Peak * t.Seconds() / s.Attack.Seconds()
	case t >= s.Duration:
		return s.Floor
	}
	decay := s.Duration - s.Attack
	frac := (t - s.Attack).Seconds() / decay.Seconds()
	return s.Peak * math.Pow(s.Floor/s.Peak, frac)
}

// Samples renders the sweep as mono float samples at sampleRate.
func (s Sweep) Samples(sampleRate int) []float32 {
	if sampleRate <= 0 || s.Duration <= 0 {
		return nil
	}
	n := int(s.Duration.Seconds() * float64(sampleRate))
	out := make([]float32, n)
	phase := 0.0
	step := time.Second / time.Duration(sampleRate)
	for i := range out {
		t := time.Duration(i) * step
		out[i] = float32(s.Gain(t) * sawtooth(phase))
		phase += s.Frequency(t) / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return out
}

// EncodeFloat32LE packs samples as little-endian IEEE-754 floats.
func EncodeFloat32LE(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// sawtooth maps phase in [0,1) to [-1,1).
func sawtooth(phase float64) float64 {
	return 2*phase - 1
}
