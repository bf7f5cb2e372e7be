package playback

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Observer receives a snapshot after every state change.
type Observer interface {
	OnSnapshot(s Snapshot)
}

type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnSnapshot(s Snapshot) { f(s) }

type commandKind int

const (
	cmdStart commandKind = iota
	cmdToggle
	cmdStep
	cmdSpeed
	cmdStop
	cmdFlush
)

func (k commandKind) String() string {
	switch k {
	case cmdStart:
		return "start"
	case cmdToggle:
		return "toggle"
	case cmdStep:
		return "step"
	case cmdSpeed:
		return "speed"
	case cmdStop:
		return "stop"
	case cmdFlush:
		return "flush"
	}
	return "unknown"
}

type command struct {
	kind  commandKind
	disks int
	speed time.Duration
	ack   chan struct{}
}

// Player owns a Controller on a single goroutine and drives auto-advance
// with a real timer. Commands are queued and applied in order.
type Player struct {
	// StopWhenComplete makes Run return once the loaded run completes.
	StopWhenComplete bool

	ctrl      *Controller
	cmds      chan command
	done      chan struct{}
	observers []Observer
	log       *log.Logger
}

func NewPlayer(ctrl *Controller) *Player {
	return &Player{
		ctrl: ctrl,
		cmds: make(chan command, 16),
		done: make(chan struct{}),
		log:  log.New(io.Discard),
	}
}

func (p *Player) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	p.log = l.WithPrefix("player")
}

// AddObserver must be called before Run.
func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }

func (p *Player) Start(numDisks int)       { p.send(command{kind: cmdStart, disks: numDisks}) }
func (p *Player) TogglePause()             { p.send(command{kind: cmdToggle}) }
func (p *Player) Step()                    { p.send(command{kind: cmdStep}) }
func (p *Player) SetSpeed(d time.Duration) { p.send(command{kind: cmdSpeed, speed: d}) }
func (p *Player) Stop()                    { p.send(command{kind: cmdStop}) }

// Flush blocks until every command sent before it has been applied, or
// until Run returns.
func (p *Player) Flush() {
	ack := make(chan struct{})
	p.send(command{kind: cmdFlush, ack: ack})
	select {
	case <-ack:
	case <-p.done:
	}
}

// Done is closed when Run returns.
func (p *Player) Done() <-chan struct{} { return p.done }

func (p *Player) send(c command) {
	select {
	case p.cmds <- c:
	case <-p.done:
	}
}

// Run processes commands and timer expirations until ctx is cancelled, a
// stop command arrives, or (with StopWhenComplete) the run completes.
func (p *Player) Run(ctx context.Context) error {
	defer close(p.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var (
		armed   bool
		armedID uint64
		timerC  <-chan time.Time
	)

	// Cancel whatever is armed unless it is still the controller's pending
	// tick, then arm at most one new timer.
	reschedule := func() {
		if pending, ok := p.ctrl.Pending(); ok && armed && pending.ID == armedID {
			return
		}
		timer.Stop()
		armed, timerC = false, nil
		if t, ok := p.ctrl.Schedule(); ok {
			timer.Reset(t.Delay)
			armed, armedID, timerC = true, t.ID, timer.C
		}
	}

	p.notify()
	reschedule()

	for {
		select {
		case <-ctx.Done():
			p.ctrl.Stop()
			return ctx.Err()

		case c := <-p.cmds:
			switch c.kind {
			case cmdStop:
				p.ctrl.Stop()
				p.notify()
				return nil
			case cmdFlush:
				close(c.ack)
				continue
			}
			p.apply(c)
			p.notify()

		case <-timerC:
			armed, timerC = false, nil
			if p.ctrl.Fire(Tick{ID: armedID}) {
				p.notify()
			}
		}

		if p.StopWhenComplete && p.ctrl.Status() == StatusComplete {
			p.log.Debug("run complete")
			return nil
		}
		reschedule()
	}
}

func (p *Player) apply(c command) {
	switch c.kind {
	case cmdStart:
		p.ctrl.Start(c.disks)
	case cmdToggle:
		p.ctrl.TogglePause()
	case cmdStep:
		p.ctrl.Step()
	case cmdSpeed:
		p.ctrl.SetSpeed(c.speed)
	}
	p.log.Debug("command", "kind", c.kind, "status", p.ctrl.Status())
}

func (p *Player) notify() {
	if len(p.observers) == 0 {
		return
	}
	s := p.ctrl.Snapshot()
	for _, o := range p.observers {
		o.OnSnapshot(s)
	}
}
