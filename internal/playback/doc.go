// Package playback drives a Towers of Hanoi solution step by step.
//
// The package separates the state machine from the clock that drives it:
//
//   - [Controller]: owns pegs, step index, run/pause flag, and speed
//   - [Tick]: a cancellable scheduled-step token issued by the controller
//   - [Player]: a headless event loop that arms real timers for ticks
//
// # States
//
//	Idle -> Running <-> Paused -> Complete
//
// Every transition that supersedes a pending step invalidates its [Tick];
// [Controller.Fire] ignores invalidated ticks, so a timer that fires late
// can never apply a stale move.
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. Run them on a single event
// loop: the bubbletea update loop or a [Player].
package playback
