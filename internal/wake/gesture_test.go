package wake

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	clock    *ManualClock
	detector *Detector
	wakes    []time.Time
	cues     int
}

func newHarness(t *testing.T, cue Cue) *harness {
	t.Helper()
	h := &harness{clock: NewManualClock(epoch)}
	if cue == nil {
		cue = CueFunc(func() error {
			h.cues++
			return nil
		})
	}
	seq := NewSequencer(h.clock, cue, func() {
		h.wakes = append(h.wakes, h.clock.Now())
	})
	h.detector = NewDetector(h.clock, seq)
	return h
}

func (h *harness) at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestDetector_DoubleTapWakesOnce(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	assert.Equal(t, StatePendingSecondTap, h.detector.State())
	h.clock.Advance(200 * time.Millisecond)
	h.detector.RegisterTap()

	require.Equal(t, StateAwakening, h.detector.State())
	assert.Equal(t, 1, h.cues)
	assert.Empty(t, h.wakes)

	h.clock.Advance(1499 * time.Millisecond)
	assert.Empty(t, h.wakes, "dismiss must not fire before 1500ms")
	h.clock.Advance(time.Millisecond)
	require.Len(t, h.wakes, 1)
	assert.Equal(t, h.at(1700), h.wakes[0])
}

func TestDetector_SlowSecondTapStartsFreshWindow(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	h.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, h.detector.Snapshot().TapCount, "reset at 500ms")
	assert.Equal(t, StateIdle, h.detector.State())

	h.clock.Advance(100 * time.Millisecond)
	h.detector.RegisterTap()
	assert.Equal(t, StatePendingSecondTap, h.detector.State())
	assert.Equal(t, 1, h.detector.Snapshot().TapCount)

	h.clock.Advance(5 * time.Second)
	assert.Empty(t, h.wakes)
	assert.Equal(t, 0, h.cues)
	assert.Equal(t, StateIdle, h.detector.State())
}

func TestDetector_TapsAfterAwakeningIgnored(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	h.detector.RegisterTap()
	frozen := h.detector.Snapshot()

	for i := 0; i < 5; i++ {
		h.clock.Advance(100 * time.Millisecond)
		h.detector.RegisterTap()
	}
	assert.Equal(t, frozen, h.detector.Snapshot())
	assert.Equal(t, 1, h.cues)

	h.clock.Advance(2 * time.Second)
	assert.Len(t, h.wakes, 1)
}

func TestDetector_TapsAfterDismissalAreInert(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	h.detector.RegisterTap()
	h.clock.Advance(RevealDelay)
	require.Len(t, h.wakes, 1)

	for i := 0; i < 10; i++ {
		h.detector.RegisterTap()
		h.clock.Advance(time.Second)
	}
	assert.Len(t, h.wakes, 1)
	assert.Equal(t, 0, h.clock.Pending())
}

func TestDetector_TeardownBeforeDismissCancels(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	h.detector.RegisterTap()
	h.clock.Advance(1000 * time.Millisecond)
	h.detector.Close()

	h.clock.Advance(10 * time.Second)
	assert.Empty(t, h.wakes)
	assert.Equal(t, 0, h.clock.Pending())
}

func TestDetector_CloseWhilePendingDropsResetTimer(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	h.detector.Close()
	assert.Equal(t, 0, h.clock.Pending())

	h.detector.RegisterTap()
	h.detector.RegisterTap()
	h.clock.Advance(5 * time.Second)
	assert.Empty(t, h.wakes)
	assert.Equal(t, 0, h.cues)
}

func TestDetector_SecondTapReplacesResetTimer(t *testing.T) {
	h := newHarness(t, nil)

	h.detector.RegisterTap()
	assert.Equal(t, 1, h.clock.Pending())
	h.clock.Advance(499 * time.Millisecond)
	h.detector.RegisterTap()
	// Only the reveal timer remains.
	assert.Equal(t, 1, h.clock.Pending())
	assert.True(t, h.detector.Snapshot().Awakening)
}

func TestDetector_TapAtResetInstantUsesArrivalOrder(t *testing.T) {
	h := newHarness(t, nil)

	// Timer expiry is processed first, so the tap opens a new window.
	h.detector.RegisterTap()
	h.clock.Advance(ResetWindow)
	h.detector.RegisterTap()
	assert.Equal(t, StatePendingSecondTap, h.detector.State())
	assert.Empty(t, h.wakes)
}

func TestDetector_AudioFailureDoesNotBlockDismiss(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	tests := []struct {
		name string
		cue  Cue
		want string
	}{
		{
			name: "error",
			cue:  CueFunc(func() error { return errors.New("no audio device") }),
			want: "no audio device",
		},
		{
			name: "panic",
			cue:  CueFunc(func() error { panic("context exploded") }),
			want: "context exploded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			h := newHarness(t, tt.cue)

			require.NotPanics(t, func() {
				h.detector.RegisterTap()
				h.detector.RegisterTap()
			})
			h.clock.Advance(RevealDelay)
			assert.Len(t, h.wakes, 1)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "PendingSecondTap", StatePendingSecondTap.String())
	assert.Equal(t, "Awakening", StateAwakening.String())
	assert.Equal(t, "Unknown", State(42).String())
}
