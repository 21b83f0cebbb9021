package audio

import (
	"errors"
	"fmt"
)

// ErrUnavailable means no audio output could be opened on this machine.
var ErrUnavailable = errors.New("audio unavailable")

// PlaybackError reports a failure building or scheduling the cue.
type PlaybackError struct {
	Op  string
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("audio %s: %v", e.Op, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}
