package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/tarunkumar1111/three-body-problem/internal/config"
	"github.com/tarunkumar1111/three-body-problem/internal/metrics"
	"github.com/tarunkumar1111/three-body-problem/internal/storage"
	"github.com/tarunkumar1111/three-body-problem/internal/viz"
	"github.com/tarunkumar1111/three-body-problem/internal/world"
)

var (
	dataDir    string
	configFile string
	preset     string

	width     float64
	height    float64
	maxBodies int
	rebound   float64
	mass      float64
	g         float64
	fps       int
	snapshot  bool

	frames  int
	bodyIdx int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "threebody",
		Short: "interactive gravitational n-body sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(*cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".threebody", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&width, "width", config.DefaultWidth, "viewport width")
	rootCmd.PersistentFlags().Float64Var(&height, "height", config.DefaultHeight, "viewport height")
	rootCmd.PersistentFlags().IntVar(&maxBodies, "max-bodies", config.DefaultMaxBodies, "maximum number of bodies")
	rootCmd.PersistentFlags().Float64Var(&rebound, "rebound", config.DefaultRebound, "velocity retained on boundary rebound")
	rootCmd.PersistentFlags().Float64Var(&mass, "mass", config.DefaultMass, "default body mass")
	rootCmd.PersistentFlags().Float64Var(&g, "g", config.DefaultG, "gravitational constant")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	rootCmd.PersistentFlags().BoolVar(&snapshot, "snapshot", false, "compute forces from a pre-frame snapshot")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save it",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's trajectory from a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIdx, "body", 0, "body index to plot")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset, then config
// file, then explicit CLI flags, later sources winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("max-bodies") {
		cfg.MaxBodies = maxBodies
	}
	if cmd.Flags().Changed("rebound") {
		cfg.Rebound = rebound
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("g") {
		cfg.G = g
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot = snapshot
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w, err := world.New(*cfg)
	if err != nil {
		return err
	}

	energy := metrics.NewEnergy(cfg.G)
	momentum := metrics.NewMomentum()

	rows := make([]storage.Row, 0, frames*w.Len())

	fmt.Printf("simulating %d frames...\n", frames)
	start := time.Now()

	for f := 0; f < frames; f++ {
		w.Step()
		energy.Observe(w.Bodies())
		momentum.Observe(w.Bodies())
		for i, b := range w.Bodies() {
			rows = append(rows, storage.Row{
				Frame: f, Body: i,
				X: b.X, Y: b.Y, VX: b.VX, VY: b.VY,
			})
		}
	}

	elapsed := time.Since(start)

	results := map[string]float64{
		energy.Name():   energy.Value(),
		momentum.Name(): momentum.Value(),
	}

	runID, err := st.Save(*cfg, rows, results)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("bodies: %d\n", w.Len())
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tBODIES\tG\tMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Bodies,
			run.Config.G,
			run.Config.MaxBodies,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if bodyIdx < 0 || bodyIdx >= meta.Bodies {
		return fmt.Errorf("body index %d out of range (run has %d bodies)", bodyIdx, meta.Bodies)
	}

	xs := make([]float64, 0, meta.Frames)
	ys := make([]float64, 0, meta.Frames)
	for _, r := range rows {
		if r.Body == bodyIdx {
			xs = append(xs, r.X)
			ys = append(ys, r.Y)
		}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %d of %d\n", bodyIdx, meta.Bodies)
	fmt.Printf("frames: %d\n\n", len(xs))

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x position vs frame"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y position vs frame"),
	))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rows, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"frame", "body", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Frame),
			strconv.Itoa(r.Body),
			strconv.FormatFloat(r.X, 'f', 6, 64),
			strconv.FormatFloat(r.Y, 'f', 6, 64),
			strconv.FormatFloat(r.VX, 'f', 6, 64),
			strconv.FormatFloat(r.VY, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
