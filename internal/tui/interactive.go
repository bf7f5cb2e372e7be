package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/hanoisim/internal/playback"
)

const (
	speedStep   = 100 * time.Millisecond
	logLines    = 9
	progressLen = 36
)

type Options struct {
	Disks  int
	Speed  time.Duration
	Policy playback.SpeedPolicy
	Paused bool
	Theme  string
	Logger *log.Logger
}

// Model is the bubbletea model for the interactive visualization. The
// playback controller is only ever touched from Update.
type Model struct {
	ctrl     *playback.Controller
	disks    int
	paused   bool
	theme    Theme
	st       styles
	keys     keyMap
	help     help.Model
	progress progress.Model
	log      *log.Logger

	width  int
	height int
}

type tickMsg playback.Tick

func tick(t playback.Tick) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg { return tickMsg(t) })
}

func New(opts Options) Model {
	ctrl := playback.New(opts.Speed)
	ctrl.Policy = opts.Policy
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctrl.SetLogger(logger)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressLen

	theme := GetTheme(opts.Theme)

	return Model{
		ctrl:     ctrl,
		disks:    playback.ClampDisks(opts.Disks),
		paused:   opts.Paused,
		theme:    theme,
		st:       newStyles(theme),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: bar,
		log:      logger.WithPrefix("tui"),
		width:    80,
		height:   24,
	}
}

// Init starts the first run straight away.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start(m.disks)
	if m.paused {
		m.ctrl.TogglePause()
	}
	return m.schedule()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.ctrl.Fire(playback.Tick(msg))
		return m, m.schedule()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.ctrl.Start(m.disks)
	case key.Matches(msg, m.keys.Pause):
		m.ctrl.TogglePause()
	case key.Matches(msg, m.keys.Step):
		m.ctrl.Step()
	case key.Matches(msg, m.keys.More):
		m.disks = playback.ClampDisks(m.disks + 1)
	case key.Matches(msg, m.keys.Fewer):
		m.disks = playback.ClampDisks(m.disks - 1)
	case key.Matches(msg, m.keys.Faster):
		m.ctrl.SetSpeed(m.ctrl.Speed() - speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.ctrl.SetSpeed(m.ctrl.Speed() + speedStep)
	case key.Matches(msg, m.keys.Theme):
		m.theme = nextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		m.log.Debug("theme", "name", m.theme.Name)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.schedule()
}

// schedule arms a tick unless one is already pending. Superseded ticks
// still arrive later but the controller drops them.
func (m Model) schedule() tea.Cmd {
	if _, ok := m.ctrl.Pending(); ok {
		return nil
	}
	t, ok := m.ctrl.Schedule()
	if !ok {
		return nil
	}
	return tick(t)
}

// Snapshot exposes the current playback state.
func (m Model) Snapshot() playback.Snapshot { return m.ctrl.Snapshot() }

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.st.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + m.st.title.Render("t o w e r s   o f   h a n o i") + "\n")
	b.WriteString(m.st.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	b.WriteString(fmt.Sprintf("   %s  %s %s  %s %s  %s %s\n\n",
		m.statusLine(s.Status),
		m.st.muted.Render("disks"), m.st.accent.Render(fmt.Sprintf("%d", m.disks)),
		m.st.muted.Render("speed"), m.st.accent.Render(fmt.Sprintf("%dms", s.Speed.Milliseconds())),
		m.st.muted.Render("theme"), m.st.accent.Render(m.theme.Name),
	))

	levels := max(s.NumDisks, m.disks)
	for _, line := range strings.Split(strings.TrimRight(drawTowers(s.Towers, levels, m.paintDisk), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}
	b.WriteString("\n")

	ratio := 0.0
	if s.Total > 0 {
		ratio = float64(s.Step) / float64(s.Total)
	}
	b.WriteString(fmt.Sprintf("   %s  %s\n\n",
		m.progress.ViewAs(ratio),
		m.st.muted.Render(fmt.Sprintf("step %d/%d", s.Step, s.Total))))

	b.WriteString(indent(m.st.panel.Render(m.moveLog(s, logLines)), 3) + "\n\n")
	b.WriteString(indent(m.help.View(m.keys), 3) + "\n")
	return b.String()
}

func (m Model) paintDisk(rank int, s string) string {
	return m.st.disk(rank).Render(s)
}

func (m Model) statusLine(st playback.Status) string {
	switch st {
	case playback.StatusRunning:
		return m.st.running.Render("● running")
	case playback.StatusPaused:
		return m.st.paused.Render("○ paused")
	case playback.StatusComplete:
		return m.st.complete.Render("✓ complete")
	}
	return m.st.muted.Render("· idle")
}

// moveLog lists a window of the move sequence around the current step,
// marking applied moves and highlighting the next one.
func (m Model) moveLog(s playback.Snapshot, lines int) string {
	if s.Total == 0 {
		return m.st.muted.Render("no moves")
	}
	start := max(0, s.Step-lines/2)
	end := min(s.Total, start+lines)
	start = max(0, end-lines)

	width := len(fmt.Sprintf("%d", s.Total))
	var rows []string
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%*d. peg %s", width, i+1, s.Moves[i])
		switch {
		case i < s.Step-1:
			rows = append(rows, m.st.faint.Render("  "+label))
		case i == s.Step-1:
			rows = append(rows, m.st.text.Render("✓ "+label))
		case i == s.Step:
			rows = append(rows, m.st.title.Render("▸ "+label))
		default:
			rows = append(rows, m.st.muted.Render("  "+label))
		}
	}
	return strings.Join(rows, "\n")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive program on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
