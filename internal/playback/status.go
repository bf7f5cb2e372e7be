package playback

import "time"

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusComplete:
		return "complete"
	}
	return "unknown"
}

// Boundary limits. The core assumes values inside these ranges; the Clamp
// helpers are for the layers that accept user input.
const (
	MinDisks     = 1
	MaxDisks     = 7
	DefaultDisks = 3

	MinSpeed     = 200 * time.Millisecond
	MaxSpeed     = 1500 * time.Millisecond
	DefaultSpeed = 800 * time.Millisecond
)

func ClampDisks(n int) int {
	return min(max(n, MinDisks), MaxDisks)
}

func ClampSpeed(d time.Duration) time.Duration {
	return min(max(d, MinSpeed), MaxSpeed)
}

// SpeedPolicy selects how a speed change treats the step already scheduled.
type SpeedPolicy int

const (
	// SpeedNextTick keeps the pending step and its delay; the new speed
	// applies from the following step on.
	SpeedNextTick SpeedPolicy = iota
	// SpeedImmediate cancels the pending step so the caller reschedules it
	// with the new delay.
	SpeedImmediate
)

func (p SpeedPolicy) String() string {
	if p == SpeedImmediate {
		return "immediate"
	}
	return "next"
}

// ParseSpeedPolicy accepts "next" or "immediate"; anything else is SpeedNextTick.
func ParseSpeedPolicy(s string) SpeedPolicy {
	if s == "immediate" {
		return SpeedImmediate
	}
	return SpeedNextTick
}
