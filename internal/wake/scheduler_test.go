package wake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewManualClock(epoch)
	var got []string
	c.Schedule(300*time.Millisecond, func() { got = append(got, "c") })
	c.Schedule(100*time.Millisecond, func() { got = append(got, "a") })
	c.Schedule(100*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, epoch.Add(200*time.Millisecond), c.Now())

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestManualClock_StopPreventsFire(t *testing.T) {
	c := NewManualClock(epoch)
	fired := false
	timer := c.Schedule(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualClock_CallbackSeesDeadlineAsNow(t *testing.T) {
	c := NewManualClock(epoch)
	var seen time.Time
	c.Schedule(time.Second, func() {
		seen = c.Now()
		c.Schedule(time.Second, func() { seen = c.Now() })
	})
	c.Advance(5 * time.Second)
	assert.Equal(t, epoch.Add(2*time.Second), seen)
}
