package wake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []string
	cue    CueOutcome
}

func (r *recordingObserver) RevealStarted(_ time.Time, cue CueOutcome) {
	r.events = append(r.events, "started")
	r.cue = cue
}
func (r *recordingObserver) RevealDismissed(time.Time) { r.events = append(r.events, "dismissed") }
func (r *recordingObserver) RevealCancelled(time.Time) { r.events = append(r.events, "cancelled") }

func TestSequencer_BeginIsIdempotent(t *testing.T) {
	clock := NewManualClock(epoch)
	calls := 0
	seq := NewSequencer(clock, nil, func() { calls++ })

	seq.Begin()
	clock.Advance(700 * time.Millisecond)
	seq.Begin()
	clock.Advance(800 * time.Millisecond)

	assert.Equal(t, 1, calls)
	assert.True(t, seq.Dismissed())
	clock.Advance(RevealDelay)
	assert.Equal(t, 1, calls)
}

func TestSequencer_TeardownAfterDismissIsHarmless(t *testing.T) {
	clock := NewManualClock(epoch)
	obs := &recordingObserver{}
	seq := NewSequencer(clock, nil, func() {})
	seq.SetObserver(obs)

	seq.Begin()
	clock.Advance(RevealDelay)
	seq.Teardown()
	seq.Teardown()

	assert.Equal(t, []string{"started", "dismissed"}, obs.events)
	assert.Equal(t, CueDisabled, obs.cue)
}

func TestSequencer_ObserverSeesCancellation(t *testing.T) {
	clock := NewManualClock(epoch)
	obs := &recordingObserver{}
	seq := NewSequencer(clock, CueFunc(func() error { return nil }), func() {
		t.Fatal("dismiss after teardown")
	})
	seq.SetObserver(obs)

	seq.Begin()
	clock.Advance(time.Second)
	seq.Teardown()
	clock.Advance(time.Second)

	assert.Equal(t, []string{"started", "cancelled"}, obs.events)
	assert.Equal(t, CuePlayed, obs.cue)
}

func TestSequencer_BeginAfterTeardownDoesNothing(t *testing.T) {
	clock := NewManualClock(epoch)
	seq := NewSequencer(clock, nil, func() { t.Fatal("unexpected dismiss") })
	seq.Teardown()
	seq.Begin()
	clock.Advance(time.Minute)
	assert.False(t, seq.Started())
}

func TestSequencer_Frame(t *testing.T) {
	clock := NewManualClock(epoch)
	seq := NewSequencer(clock, nil, nil)

	assert.Equal(t, RevealFrame{ContentOpacity: 1}, seq.Frame(epoch))

	seq.Begin()
	f := seq.Frame(epoch)
	assert.Equal(t, 1.0, f.ContentOpacity)
	assert.Equal(t, 0.0, f.PanelShift)

	f = seq.Frame(epoch.Add(250 * time.Millisecond))
	assert.InDelta(t, 0.5, f.ContentOpacity, 1e-9)

	f = seq.Frame(epoch.Add(750 * time.Millisecond))
	assert.Equal(t, 0.0, f.ContentOpacity)
	assert.InDelta(t, 0.5, f.PanelShift, 1e-9)

	f = seq.Frame(epoch.Add(RevealDelay + time.Second))
	assert.Equal(t, 1.0, f.PanelShift)
}

func TestEaseInOutCubic_Monotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := easeInOutCubic(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.InDelta(t, 0, easeInOutCubic(0), 1e-12)
	assert.InDelta(t, 1, easeInOutCubic(1), 1e-12)
}
