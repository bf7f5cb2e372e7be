package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/hanoisim/internal/analysis"
	"github.com/san-kum/hanoisim/internal/automation"
	"github.com/san-kum/hanoisim/internal/config"
	"github.com/san-kum/hanoisim/internal/export"
	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/playback"
	"github.com/san-kum/hanoisim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	disks      int
	speedMs    int
	policy     string
	paused     bool
	theme      string
	verbose    bool
	// play, script
	plain       bool
	scriptPlain bool
	// plot
	plotWidth  int
	plotHeight int
	// export
	output  string
	svgStep int
	svgPeg  int
	// bench
	benchMin int
	benchMax int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "hanoisim",
})

// main registers commands and flags, defaults to the interactive TUI, and
// exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "hanoisim",
		Short:         "towers of hanoi visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addPlaybackFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal visualization",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addPlaybackFlags(tuiCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate a solution without interaction",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	addPlaybackFlags(playCmd)
	playCmd.Flags().BoolVar(&plain, "plain", false, "print one line per move instead of redrawing")

	movesCmd := &cobra.Command{
		Use:   "moves [disks]",
		Short: "print the optimal move sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printMoves,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify [disks]",
		Short: "replay and verify the generated solution",
		Args:  cobra.MaximumNArgs(1),
		RunE:  verifyMoves,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [disks]",
		Short: "plot peg occupancy over the solution",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSolution,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [disks]",
		Short: "export the move sequence to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportFormat("csv"),
	}
	exportCSVCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [disks]",
		Short: "export the move sequence to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportFormat("json"),
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [disks]",
		Short: "draw the towers at a step, or a peg's occupancy, as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgStep, "step", -1, "step to draw (default: solved position)")
	exportSVGCmd.Flags().IntVar(&svgPeg, "peg", -1, "chart disks on this peg over time instead")

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "replay a scripted sequence of playback commands",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().BoolVar(&scriptPlain, "plain", true, "print one line per move instead of redrawing")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "generate and verify solutions across disk counts",
		Args:  cobra.NoArgs,
		RunE:  benchSweep,
	}
	benchCmd.Flags().IntVar(&benchMin, "min", 1, "smallest disk count")
	benchCmd.Flags().IntVar(&benchMax, "max", 20, "largest disk count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, playCmd, movesCmd, verifyCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, scriptCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&disks, "disks", "n", config.DefaultDisks, "number of disks (1-7)")
	cmd.Flags().IntVar(&speedMs, "speed", config.DefaultSpeedMs, "delay between moves in ms (200-1500)")
	cmd.Flags().StringVar(&policy, "policy", config.DefaultPolicy, "speed change policy: next or immediate")
	cmd.Flags().BoolVar(&paused, "paused", false, "start paused")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
}

// resolveConfig layers defaults, preset, config file, then explicitly set
// flags, and clamps the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("disks") {
		cfg.Disks = disks
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("policy") {
		cfg.SpeedPolicy = policy
	}
	if flags.Changed("paused") {
		cfg.Paused = paused
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	before := *cfg
	cfg.Clamp()
	if before.Disks != cfg.Disks || before.SpeedMs != cfg.SpeedMs {
		logger.Warn("values clamped", "disks", cfg.Disks, "speed_ms", cfg.SpeedMs)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && !verbose {
		logger.SetLevel(lvl)
	}
	return cfg, nil
}

// diskArg reads the optional positional disk count, falling back to config.
func diskArg(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 0 {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return 0, err
		}
		return cfg.Disks, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid disk count %q: %w", args[0], err)
	}
	if n < 1 || n > hanoi.MaxGenerateDisks {
		return 0, fmt.Errorf("disk count must be between 1 and %d, got %d", hanoi.MaxGenerateDisks, n)
	}
	return n, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Disks:  cfg.Disks,
		Speed:  cfg.Speed(),
		Policy: cfg.Policy(),
		Paused: cfg.Paused,
		Theme:  cfg.Theme,
	}
	if tui.GetTheme(cfg.Theme).Name != cfg.Theme {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "available", tui.ThemeNames())
	}

	// stderr shares the terminal with the alternate screen, so TUI logs
	// only go to a file and only on request.
	if path := os.Getenv("HANOISIM_DEBUG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		fileLogger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: log.DebugLevel})
		opts.Logger = fileLogger
	}

	return tui.Run(opts)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl := playback.New(cfg.Speed())
	ctrl.Policy = cfg.Policy()
	ctrl.SetLogger(logger)

	renderer := tui.NewLiveRenderer(os.Stdout, cfg.Disks)
	renderer.Plain = plain

	player := playback.NewPlayer(ctrl)
	player.SetLogger(logger)
	player.StopWhenComplete = true
	player.AddObserver(renderer)

	renderer.Start()
	defer renderer.Stop()

	logger.Debug("playing", "disks", cfg.Disks, "speed", cfg.Speed(), "policy", cfg.Policy())
	player.Start(cfg.Disks)
	if cfg.Paused {
		logger.Warn("start_paused ignored in play mode")
	}

	start := time.Now()
	if err := player.Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		return err
	}
	logger.Info("solved", "disks", cfg.Disks, "moves", hanoi.MoveCount(cfg.Disks), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func printMoves(cmd *cobra.Command, args []string) error {
	n, err := diskArg(cmd, args)
	if err != nil {
		return err
	}

	moves := hanoi.Generate(n)
	diskOf, err := hanoi.DiskAt(n, moves)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tDISK\tFROM\tTO")
	for i, m := range moves {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", i+1, diskOf[i], m.From, m.To)
	}
	return w.Flush()
}

func verifyMoves(cmd *cobra.Command, args []string) error {
	n, err := diskArg(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	moves := hanoi.Generate(n)
	if err := hanoi.Verify(n, moves); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	fmt.Printf("ok: %d disks solved in %d moves (%v)\n", n, len(moves), time.Since(start))
	return nil
}

func plotSolution(cmd *cobra.Command, args []string) error {
	n, err := diskArg(cmd, args)
	if err != nil {
		return err
	}

	moves := hanoi.Generate(n)
	occ, err := analysis.PegOccupancy(n, moves)
	if err != nil {
		return err
	}
	activity, err := analysis.DiskActivity(n, moves)
	if err != nil {
		return err
	}

	fmt.Printf("disks: %d\n", n)
	fmt.Printf("moves: %d\n\n", len(moves))
	fmt.Println(analysis.PlotOccupancy(occ, plotWidth, plotHeight))
	fmt.Println()
	fmt.Println(analysis.PlotGrowth(max(n, 2), plotHeight))

	fmt.Println("\ndisk activity:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISK\tMOVES")
	for i, c := range activity {
		fmt.Fprintf(w, "%d\t%d\n", i+1, c)
	}
	return w.Flush()
}

func exportFormat(format string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		n, err := diskArg(cmd, args)
		if err != nil {
			return err
		}
		if err := export.ToFile(output, format, n, hanoi.Generate(n)); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if output != "" && output != "-" {
			logger.Info("exported", "format", format, "disks", n, "path", output)
		}
		return nil
	}
}

func exportSVG(cmd *cobra.Command, args []string) error {
	n, err := diskArg(cmd, args)
	if err != nil {
		return err
	}
	moves := hanoi.Generate(n)

	var svg string
	if svgPeg >= 0 {
		if svgPeg >= hanoi.NumPegs {
			return fmt.Errorf("peg must be 0-%d, got %d", hanoi.NumPegs-1, svgPeg)
		}
		occ, err := analysis.PegOccupancy(n, moves)
		if err != nil {
			return err
		}
		svg = export.SeriesToSVG(occ[svgPeg], 800, 200, "#00ff88")
	} else {
		step := svgStep
		if step < 0 || step > len(moves) {
			step = len(moves)
		}
		towers, err := hanoi.Replay(n, moves[:step])
		if err != nil {
			return err
		}
		svg = export.TowersToSVG(towers, n, 16)
	}

	if output == "" || output == "-" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg+"\n"), 0644); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Info("exported", "format", "svg", "disks", n, "path", output)
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl := playback.New(cfg.Speed())
	ctrl.Policy = cfg.Policy()
	ctrl.SetLogger(logger)

	renderer := tui.NewLiveRenderer(os.Stdout, playback.MaxDisks)
	renderer.Plain = scriptPlain
	renderer.Start()
	defer renderer.Stop()

	logger.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))
	final, err := automation.RunScenario(ctx, scenario, ctrl, renderer)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	logger.Info("scenario finished", "status", final.Status, "step", final.Step, "total", final.Total)
	return nil
}

func benchSweep(cmd *cobra.Command, args []string) error {
	results, err := automation.RunSweep(cmd.Context(), benchMin, benchMax)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISKS\tMOVES\tVERIFIED\tTIME\tMOVES/SEC")
	for _, r := range results {
		rate := float64(r.Moves) / max(r.Elapsed.Seconds(), 1e-9)
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.0f\n", r.Disks, r.Moves, r.Verified, r.Elapsed, rate)
		if r.Err != nil {
			logger.Error("verification failed", "disks", r.Disks, "err", r.Err)
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISKS\tSPEED\tPOLICY\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%dms\t%s\t%s\n", name, p.Disks, p.SpeedMs, p.SpeedPolicy, config.PresetInfo(name))
	}
	return w.Flush()
}
