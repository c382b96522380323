package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/artcade/internal/config"
	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/registry"
	"github.com/san-kum/artcade/internal/rpg"
	"github.com/san-kum/artcade/internal/store"
	"github.com/san-kum/artcade/internal/tui"
)

var (
	dataDir     string
	seed        int64
	preset      string
	configFile  string
	paletteName string
	speed       float64
	windowScale int
	noScanlines bool
	slot        int
	frames      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "artcade",
		Short: "retro demo cabinet for a pocket-sized screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := engine.NewApp(registry.Entries(dataDir), dataDir, "", seed)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "launch one scene directly",
		Args:  cobra.ExactArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&paletteName, "palette", "", "starting palette")
	runCmd.Flags().Float64Var(&speed, "speed", 0, "speed parameter override")
	runCmd.Flags().IntVar(&windowScale, "scale", 0, "window scale factor")
	runCmd.Flags().BoolVar(&noScanlines, "no-scanlines", false, "disable the scanline overlay")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scenes",
		RunE:  listScenes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal browser with braille previews",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(dataDir, seed)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "benchmark a scene headless",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	benchCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rpgCmd := &cobra.Command{
		Use:   "rpg",
		Short: "launch straight into the rpg",
		RunE:  runRPG,
	}
	rpgCmd.Flags().IntVar(&slot, "slot", 0, "save slot to resume (0 = main menu)")

	savesCmd := &cobra.Command{
		Use:   "saves",
		Short: "list rpg save slots",
		RunE:  listSaves,
	}

	exportCmd := &cobra.Command{
		Use:   "export [slot]",
		Short: "dump a save slot as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSave,
	}

	rootCmd.AddCommand(runCmd, listCmd, presetsCmd, tuiCmd, benchCmd, rpgCmd, savesCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".artcade")
	}
	return ".artcade"
}

// resolveConfig layers defaults, preset, config file, then CLI flags.
func resolveConfig(cmd *cobra.Command, scene string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scene = scene

	if preset != "" {
		p := config.GetPreset(scene, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scene))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset == "" {
			cfg = fileCfg
		} else {
			// preset params win over file params for the keys they set
			for k, v := range cfg.Params {
				fileCfg.Params[k] = v
			}
			fileCfg.Palette = cfg.Palette
			cfg = fileCfg
		}
		cfg.Scene = scene
	}

	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteName
	}
	if cmd.Flags().Changed("speed") {
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		cfg.Params["speed"] = speed
	}
	if cmd.Flags().Changed("scale") {
		cfg.WindowScale = windowScale
	}
	if noScanlines {
		cfg.Scanlines = false
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	scene := args[0]
	cfg, err := resolveConfig(cmd, scene)
	if err != nil {
		return err
	}

	app, err := engine.NewApp(registry.Entries(dataDir), dataDir, scene, seed)
	if err != nil {
		return err
	}
	app.ApplyConfig(cfg.Palette, cfg.Params, cfg.Scanlines, cfg.WindowScale)
	return app.Run()
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDESCRIPTION")
	for _, e := range registry.Entries(dataDir) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Title, e.Desc)
	}
	return w.Flush()
}

func benchScene(cmd *cobra.Command, args []string) error {
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}
	entry, err := registry.Lookup(dataDir, args[0])
	if err != nil {
		return err
	}

	scene := entry.New()
	if preset != "" {
		p := config.GetPreset(entry.Name, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(entry.Name))
		}
		if tunable, ok := scene.(engine.Configurable); ok {
			for k, v := range p.Params {
				tunable.SetParam(k, v)
			}
		}
	}
	benchSeed := seed
	if benchSeed == 0 {
		benchSeed = 42
	}
	scene.Reset(benchSeed)

	fmt.Printf("benchmarking %s for %d frames\n\n", entry.Name, frames)

	times := make([]float64, 0, frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		t0 := time.Now()
		scene.Step(engine.Dt)
		times = append(times, time.Since(t0).Seconds()*1000)
	}
	elapsed := time.Since(start)

	var minMs, maxMs, sum float64
	minMs = times[0]
	for _, t := range times {
		if t < minMs {
			minMs = t
		}
		if t > maxMs {
			maxMs = t
		}
		sum += t
	}
	avg := sum / float64(len(times))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tTOTAL\tAVG\tMIN\tMAX\tFPS")
	fmt.Fprintf(w, "%d\t%v\t%.3fms\t%.3fms\t%.3fms\t%.0f\n",
		frames, elapsed.Round(time.Millisecond), avg, minMs, maxMs,
		float64(frames)/elapsed.Seconds())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(downsample(times, 100),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame step time (ms)"),
	))
	budget := engine.Dt * 1000
	if maxMs > budget {
		fmt.Printf("\nwarning: worst frame %.3fms exceeds the %.2fms tick budget\n", maxMs, budget)
	}
	return nil
}

func downsample(data []float64, width int) []float64 {
	if len(data) <= width {
		return data
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(data) / width
		hi := (i + 1) * len(data) / width
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for _, v := range data[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func runRPG(cmd *cobra.Command, args []string) error {
	entries := registry.Entries(dataDir)
	if slot > 0 {
		st := store.New(dataDir)
		for i := range entries {
			if entries[i].Name == "rpg" {
				s := slot
				entries[i].New = func() engine.Scene { return rpg.NewScene(st, s) }
			}
		}
	}
	app, err := engine.NewApp(entries, dataDir, "rpg", seed)
	if err != nil {
		return err
	}
	return app.Run()
}

func listSaves(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	slots, err := st.List()
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("no saves found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSAVED\tSIZE\tCHARACTER")
	for _, s := range slots {
		who := "-"
		if g, err := rpg.Load(st, s.Slot); err == nil {
			who = fmt.Sprintf("%s (lv%d %s)", g.Character.Name, g.Character.Level,
				strings.ToLower(g.Character.Class.String()))
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			s.Slot, s.SavedAt.Format("2006-01-02 15:04:05"), s.Size, who)
	}
	return w.Flush()
}

func exportSave(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot: %s", args[0])
	}
	data, err := store.New(dataDir).Raw(n)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
