package ui

import "time"

// frameMsg advances animations (matrix rain, reveal, pulses).
type frameMsg time.Time

// timerFiredMsg delivers a wake.Scheduler timer back onto the event loop.
type timerFiredMsg struct {
	id uint64
}

// clipboardResultMsg reports the outcome of copying a card list.
type clipboardResultMsg struct {
	title string
	err   error
}
