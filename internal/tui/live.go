package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/hanoisim/internal/playback"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints a frame for every snapshot it observes. In Plain mode
// it writes one summary line per snapshot instead of redrawing the screen.
type LiveRenderer struct {
	Plain bool

	out      io.Writer
	levels   int
	lastStep int
	frames   int
}

func NewLiveRenderer(out io.Writer, levels int) *LiveRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &LiveRenderer{out: out, levels: levels, lastStep: -1}
}

func (r *LiveRenderer) OnSnapshot(s playback.Snapshot) {
	if s.Status == playback.StatusIdle {
		return
	}
	if r.Plain {
		r.line(s)
		return
	}
	r.frame(s)
}

func (r *LiveRenderer) line(s playback.Snapshot) {
	// Pause toggles produce snapshots without movement; plain output only
	// records steps.
	if s.Step == r.lastStep {
		return
	}
	r.lastStep = s.Step
	r.frames++

	move := "start"
	if m, ok := s.LastMove(); ok {
		move = m.String()
	}
	fmt.Fprintf(r.out, "step %*d/%d  %-7s  %s %s %s\n",
		len(fmt.Sprintf("%d", s.Total)), s.Step, s.Total, move,
		pegString(s.Towers[0]), pegString(s.Towers[1]), pegString(s.Towers[2]))
}

func (r *LiveRenderer) frame(s playback.Snapshot) {
	r.frames++
	levels := max(r.levels, s.NumDisks)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  hanoi  %d disks  %s  step %d/%d  %dms\n\n",
		s.NumDisks, s.Status, s.Step, s.Total, s.Speed.Milliseconds()))
	for _, row := range strings.Split(strings.TrimRight(drawTowers(s.Towers, levels, nil), "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}
	if m, ok := s.LastMove(); ok {
		b.WriteString(fmt.Sprintf("\n  last move: %s\n", m))
	}
	fmt.Fprint(r.out, b.String())
}

// Frames returns how many frames or lines have been written.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Start() {
	if !r.Plain {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if !r.Plain {
		fmt.Fprint(r.out, showCursor)
	}
}
