package playback

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/hanoisim/internal/hanoi"
)

// Tick identifies one scheduled auto-advance step.
type Tick struct {
	ID    uint64
	Delay time.Duration
}

// Snapshot is a read-only copy of the playback state for renderers.
type Snapshot struct {
	NumDisks int
	Towers   hanoi.Towers
	Moves    []hanoi.Move
	Step     int
	Total    int
	Running  bool
	Speed    time.Duration
	Status   Status
}

// LastMove returns the most recently applied move.
func (s Snapshot) LastMove() (hanoi.Move, bool) {
	if s.Step == 0 || s.Step > len(s.Moves) {
		return hanoi.Move{}, false
	}
	return s.Moves[s.Step-1], true
}

type Controller struct {
	Policy SpeedPolicy

	numDisks int
	towers   hanoi.Towers
	moves    []hanoi.Move
	step     int
	running  bool
	speed    time.Duration

	gen     uint64
	pending bool
	// delay the pending tick was issued with
	pendingDelay time.Duration

	log *log.Logger
}

func New(speed time.Duration) *Controller {
	return &Controller{
		speed: ClampSpeed(speed),
		log:   log.New(io.Discard),
	}
}

func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	c.log = l.WithPrefix("playback")
}

// Start loads a fresh n-disk run and sets it running. Any pending step
// from a previous run is invalidated.
func (c *Controller) Start(numDisks int) {
	c.invalidate()
	c.numDisks = numDisks
	c.moves = hanoi.Generate(numDisks)
	c.towers = hanoi.NewTowers(numDisks)
	c.step = 0
	c.running = true
	c.log.Debug("start", "disks", numDisks, "moves", len(c.moves), "speed", c.speed)
}

// Stop unloads the current run and returns to Idle.
func (c *Controller) Stop() {
	c.invalidate()
	c.numDisks = 0
	c.moves = nil
	c.towers = hanoi.Towers{}
	c.step = 0
	c.running = false
}

// TogglePause flips the running flag. It does nothing while Idle.
func (c *Controller) TogglePause() {
	if c.moves == nil {
		return
	}
	c.invalidate()
	c.running = !c.running
	c.log.Debug("toggle", "running", c.running, "step", c.step)
}

// Step applies the next move manually. It reports false when there is
// nothing left to apply.
func (c *Controller) Step() bool {
	if c.moves == nil {
		return false
	}
	c.invalidate()
	return c.advance()
}

func (c *Controller) SetSpeed(d time.Duration) {
	c.speed = ClampSpeed(d)
	if c.Policy == SpeedImmediate {
		c.invalidate()
	}
	c.log.Debug("speed", "speed", c.speed, "policy", c.Policy)
}

func (c *Controller) Speed() time.Duration { return c.speed }

// Schedule issues a new tick when the run is active and moves remain,
// superseding any tick issued before.
func (c *Controller) Schedule() (Tick, bool) {
	c.invalidate()
	if !c.running || c.step >= len(c.moves) {
		return Tick{}, false
	}
	c.gen++
	c.pending = true
	c.pendingDelay = c.speed
	return Tick{ID: c.gen, Delay: c.speed}, true
}

// Pending returns the tick currently awaiting delivery, if any, with the
// delay it was issued with.
func (c *Controller) Pending() (Tick, bool) {
	if !c.pending {
		return Tick{}, false
	}
	return Tick{ID: c.gen, Delay: c.pendingDelay}, true
}

// Fire delivers a tick. Only the pending tick advances the run; stale or
// duplicate ticks are ignored.
func (c *Controller) Fire(t Tick) bool {
	if !c.pending || t.ID != c.gen {
		c.log.Debug("stale tick dropped", "tick", t.ID, "current", c.gen)
		return false
	}
	c.pending = false
	if !c.running {
		return false
	}
	return c.advance()
}

func (c *Controller) advance() bool {
	if c.step >= len(c.moves) {
		return false
	}
	m := c.moves[c.step]
	if err := c.towers.Apply(m); err != nil {
		c.log.Error("move rejected", "step", c.step+1, "move", m, "err", err)
	}
	c.step++
	if c.step == len(c.moves) {
		c.log.Debug("complete", "disks", c.numDisks, "moves", len(c.moves))
	}
	return true
}

func (c *Controller) invalidate() {
	if c.pending {
		c.gen++
		c.pending = false
	}
}

func (c *Controller) Status() Status {
	switch {
	case c.moves == nil:
		return StatusIdle
	case c.step >= len(c.moves):
		return StatusComplete
	case c.running:
		return StatusRunning
	default:
		return StatusPaused
	}
}

func (c *Controller) Snapshot() Snapshot {
	moves := make([]hanoi.Move, len(c.moves))
	copy(moves, c.moves)
	return Snapshot{
		NumDisks: c.numDisks,
		Towers:   c.towers.Clone(),
		Moves:    moves,
		Step:     c.step,
		Total:    len(c.moves),
		Running:  c.running,
		Speed:    c.speed,
		Status:   c.Status(),
	}
}
