// Package wake implements the double-tap wake gesture and the reveal
// sequence that follows it.
//
// Core pieces:
//   - Detector: classifies taps into single/double within ResetWindow
//   - Sequencer: plays the boot cue and dismisses the overlay after RevealDelay
//   - Scheduler: injected timer service (ManualClock for tests)
//
// Everything runs on the caller's goroutine. Timer callbacks must be
// delivered on the same goroutine that calls RegisterTap.
package wake
