package automation

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/playback"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted playback session
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single user intent. Action is one of start, pause,
// step, speed, wait, or await.
type ScenarioStep struct {
	Action  string `yaml:"action"`
	Disks   int    `yaml:"disks,omitempty"`
	SpeedMs int    `yaml:"speed_ms,omitempty"`
	WaitMs  int    `yaml:"wait_ms,omitempty"`
	Repeat  int    `yaml:"repeat,omitempty"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Validate checks every step's parameters. An await with no earlier start
// could never finish, so it is rejected too.
func (s *Scenario) Validate() error {
	started := false
	for i, step := range s.Steps {
		switch step.Action {
		case "start":
			if step.Disks < playback.MinDisks || step.Disks > playback.MaxDisks {
				return fmt.Errorf("step %d: disks must be %d-%d, got %d", i+1, playback.MinDisks, playback.MaxDisks, step.Disks)
			}
			started = true
		case "await":
			if !started {
				return fmt.Errorf("step %d: await before any start", i+1)
			}
		case "speed":
			if step.SpeedMs <= 0 {
				return fmt.Errorf("step %d: speed_ms must be positive", i+1)
			}
		case "wait":
			if step.WaitMs <= 0 {
				return fmt.Errorf("step %d: wait_ms must be positive", i+1)
			}
		case "pause", "step":
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}

// statusWatch tracks the latest snapshot seen by the player.
type statusWatch struct {
	mu   sync.Mutex
	last playback.Snapshot
}

func (w *statusWatch) OnSnapshot(s playback.Snapshot) {
	w.mu.Lock()
	w.last = s
	w.mu.Unlock()
}

func (w *statusWatch) snapshot() playback.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// RunScenario executes all steps against a fresh player built on ctrl and
// returns the final snapshot. Observers are attached before the player
// starts.
func RunScenario(ctx context.Context, scenario *Scenario, ctrl *playback.Controller, observers ...playback.Observer) (playback.Snapshot, error) {
	player := playback.NewPlayer(ctrl)
	watch := &statusWatch{}
	player.AddObserver(watch)
	for _, o := range observers {
		player.AddObserver(o)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- player.Run(runCtx) }()

	fail := func(err error) (playback.Snapshot, error) {
		cancel()
		<-errc
		return watch.snapshot(), err
	}

	for i, step := range scenario.Steps {
		repeat := max(step.Repeat, 1)
		for r := 0; r < repeat; r++ {
			switch step.Action {
			case "start":
				player.Start(step.Disks)
			case "pause":
				player.TogglePause()
			case "step":
				player.Step()
			case "speed":
				player.SetSpeed(time.Duration(step.SpeedMs) * time.Millisecond)
			case "wait":
				if err := sleep(ctx, time.Duration(step.WaitMs)*time.Millisecond); err != nil {
					return fail(fmt.Errorf("step %d: %w", i+1, err))
				}
			case "await":
				player.Flush()
				if err := awaitComplete(ctx, watch); err != nil {
					return fail(fmt.Errorf("step %d: %w", i+1, err))
				}
			default:
				return fail(fmt.Errorf("step %d: unknown action %q", i+1, step.Action))
			}
		}
	}

	player.Flush()
	final := watch.snapshot()
	player.Stop()
	if err := <-errc; err != nil {
		return final, err
	}
	return final, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func awaitComplete(ctx context.Context, w *statusWatch) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		s := w.snapshot()
		if s.Status == playback.StatusComplete {
			return nil
		}
		if s.Status == playback.StatusPaused {
			return fmt.Errorf("await while paused at step %d/%d", s.Step, s.Total)
		}
		if s.Status == playback.StatusIdle {
			return fmt.Errorf("await with no run loaded")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SweepResult holds the outcome of solving one disk count
type SweepResult struct {
	Disks    int
	Moves    int
	Verified bool
	Elapsed  time.Duration
	Err      error
}

// RunSweep generates and verifies solutions for every disk count in
// [minDisks, maxDisks].
func RunSweep(ctx context.Context, minDisks, maxDisks int) ([]SweepResult, error) {
	if minDisks < 1 || maxDisks < minDisks || maxDisks > hanoi.MaxGenerateDisks {
		return nil, fmt.Errorf("invalid sweep range %d..%d (limit %d)", minDisks, maxDisks, hanoi.MaxGenerateDisks)
	}
	results := make([]SweepResult, 0, maxDisks-minDisks+1)

	for n := minDisks; n <= maxDisks; n++ {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		start := time.Now()
		moves := hanoi.Generate(n)
		err := hanoi.Verify(n, moves)
		results = append(results, SweepResult{
			Disks:    n,
			Moves:    len(moves),
			Verified: err == nil,
			Elapsed:  time.Since(start),
			Err:      err,
		})
	}

	return results, nil
}
