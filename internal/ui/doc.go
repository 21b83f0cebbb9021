// Package ui is the Bubble Tea front end of the portfolio.
//
// AppModel owns the section router, the favourites cards and the matrix
// background. Until the wake gesture completes, a WakeView sits on the
// OverlayStack and receives all input; its Compose method draws the
// retracting panels over the rendered main frame. Timers requested by the
// wake package run through teaScheduler, so every state change happens
// inside Update.
package ui
