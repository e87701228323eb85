package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/eduvision/internal/automation"
	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/chart"
	"github.com/san-kum/eduvision/internal/config"
	"github.com/san-kum/eduvision/internal/export"
	"github.com/san-kum/eduvision/internal/storage"
	"github.com/san-kum/eduvision/internal/tui"
	"github.com/san-kum/eduvision/internal/viewer"
	"github.com/san-kum/eduvision/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logFile    string
	// Root flags
	category string
	theme    string
	view     string
	seed     int64
	watch    bool
	// snapshot
	outFile    string
	zoom       float64
	dims       bool
	snapWidth  int
	snapHeight int
	scale      int
	allModels  bool
	// tour
	realtime bool
	jsonOut  bool
	record   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "eduvision",
		Short:        "interactive 3D model dashboard for the classroom",
		SilenceUsage: true,
		RunE:         runDashboard,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eduvision", "data directory for recorded tours")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "start from a preset (see 'presets')")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append debug logs to this file")

	rootCmd.Flags().StringVar(&category, "category", config.DefaultCategory, "subject to open (mechanical, biological)")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&view, "view", config.DefaultView, "start page (dashboard, models, settings)")
	rootCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed for generated scenes")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")

	catalogCmd := &cobra.Command{
		Use:   "catalog [category]",
		Short: "list models",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listCatalog,
	}

	showCmd := &cobra.Command{
		Use:   "show [model]",
		Short: "print a model fact sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  showModel,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [category]",
		Short: "show learning analytics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStats,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [model]",
		Short: "render a model to svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotModel,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file, or directory with --all (default <model>.svg)")
	snapshotCmd.Flags().BoolVar(&allModels, "all", false, "render every model concurrently")
	snapshotCmd.Flags().Float64Var(&zoom, "zoom", viewer.DefaultZoom, "zoom level")
	snapshotCmd.Flags().BoolVar(&dims, "dims", false, "draw the dimensions box")
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 60, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 20, "canvas height in cells")
	snapshotCmd.Flags().IntVar(&scale, "scale", 6, "pixels per braille dot")
	snapshotCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	tourCmd := &cobra.Command{
		Use:   "tour [file]",
		Short: "replay a scripted tour",
		Args:  cobra.ExactArgs(1),
		RunE:  runTour,
	}
	tourCmd.Flags().BoolVar(&realtime, "realtime", false, "run load timers on the wall clock")
	tourCmd.Flags().BoolVar(&jsonOut, "json", false, "print frames as json")
	tourCmd.Flags().BoolVar(&record, "record", false, "save the run to the data directory")
	tourCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed for snapshots")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded tours",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run-id]",
		Short: "plot zoom over a recorded tour",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list config presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("available presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %s, theme %s, zoom %.1fx\n", name, p.CategoryValue().Title(), p.Theme, p.Viewer.Zoom)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				t := viz.GetTheme(name)
				fmt.Printf("  %-10s primary %s  accent %s\n", name, t.Primary, t.Accent)
			}
		},
	}

	rootCmd.AddCommand(catalogCmd, showCmd, statsCmd, snapshotCmd, tourCmd, runsCmd, plotCmd, presetsCmd, themesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, *config.Config, error) {
	base := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		base = p
	}

	cp := *base
	cfg := &cp
	if configFile != "" {
		loaded, err := config.LoadInto(base, configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("category") {
		cfg.Category = category
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("view") {
		cfg.View = view
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, base, nil
}

func newLogger(path string) (*log.Logger, func(), error) {
	prefix := fmt.Sprintf("eduvision %s ", uuid.NewString()[:8])
	if path == "" {
		return log.New(io.Discard, prefix, log.LstdFlags), func() {}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, prefix, log.LstdFlags), func() { f.Close() }, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Printf("starting: category=%s theme=%s view=%s", cfg.Category, cfg.Theme, cfg.View)

	opts := tui.Options{Config: cfg, Logger: logger}
	if watch {
		if configFile == "" {
			return fmt.Errorf("--watch needs --config")
		}
		opts.WatchPath = configFile
		opts.WatchBase = base
	}
	return tui.Run(cmd.Context(), opts)
}

func listCatalog(cmd *cobra.Command, args []string) error {
	cats := catalog.Categories()
	if len(args) == 1 {
		c, err := catalog.ParseCategory(args[0])
		if err != nil {
			return err
		}
		cats = []catalog.Category{c}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUBJECT\tDIMENSIONS\tKIND")
	for _, c := range cats {
		for _, e := range catalog.For(c).Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s: %s\n",
				e.ID,
				e.Name,
				c.Short(),
				e.Dimensions,
				e.LabelKind,
				e.Label,
			)
		}
	}
	return w.Flush()
}

func findModel(id string) (catalog.Entry, error) {
	e, err := catalog.Find(id)
	if err == nil {
		return e, nil
	}
	if s, ok := catalog.Suggest(id); ok {
		return e, fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return e, err
}

func showModel(cmd *cobra.Command, args []string) error {
	e, err := findModel(args[0])
	if err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(catalog.Sheet(e))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	cats := catalog.Categories()
	if len(args) == 1 {
		c, err := catalog.ParseCategory(args[0])
		if err != nil {
			return err
		}
		cats = []catalog.Category{c}
	}

	for i, c := range cats {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n\n", c.Title())
		fmt.Println("learning method effectiveness")
		fmt.Println(chart.Shares(catalog.Effectiveness(c), 60))
		fmt.Println()
		fmt.Println(chart.Trend(catalog.Engagement(c), 60, 10, "engagement, minutes per student per week"))
	}
	return nil
}

func snapshotModel(cmd *cobra.Command, args []string) error {
	if zoom < viewer.MinZoom || zoom > viewer.MaxZoom {
		return fmt.Errorf("zoom %.2f outside [%.1f, %.1f]", zoom, viewer.MinZoom, viewer.MaxZoom)
	}
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opts := export.RenderOptions{
		Width:      snapWidth,
		Height:     snapHeight,
		Scale:      scale,
		Zoom:       zoom,
		Dimensions: dims,
		Seed:       cfg.Seed,
		Theme:      viz.GetTheme(cfg.Theme),
	}

	if allModels {
		dir := outFile
		if dir == "" {
			dir = "snapshots"
		}
		paths, err := export.Batch(cmd.Context(), dir, catalog.All(), opts)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println("wrote", p)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("snapshot needs a model id or --all")
	}
	e, err := findModel(args[0])
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = e.ID + ".svg"
	}
	lit, err := export.RenderFile(path, e.ID, opts)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %d dots)\n", path, e.Name, lit)
	return nil
}

func runTour(cmd *cobra.Command, args []string) error {
	tour, err := automation.LoadTour(args[0])
	if err != nil {
		return err
	}

	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	frames, err := automation.RunTour(cmd.Context(), tour, automation.Options{
		Delays:   viewer.Delays{Mount: cfg.Delays.Mount, Select: cfg.Delays.Select},
		Realtime: realtime,
		Seed:     cfg.Seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if record {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(tour, cfg.Seed, realtime, frames)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "recorded %s\n", runID)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tAT\tACTION\tMODEL\tSTATE\tZOOM\tDIMS\tTAB\tNOTE")
	for _, f := range frames {
		state := "ready"
		if f.State.Loading {
			state = "loading"
		}
		fmt.Fprintf(w, "%d\t%dms\t%s\t%s\t%s\t%.1fx\t%t\t%s\t%s\n",
			f.Step,
			f.At.Milliseconds(),
			f.Action,
			f.State.ModelID,
			state,
			f.State.Zoom,
			f.State.ShowDimensions,
			f.State.Tab,
			f.Note,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, f := range frames {
		if f.Snapshot != "" {
			fmt.Printf("\nstep %d\n%s\n", f.Step, f.Snapshot)
		}
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
	fmt.Fprintln(w, "ID\tTOUR\tTIME\tFRAMES\tDURATION\tFINAL")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dms\t%s\n",
			run.ID,
			run.Tour,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.DurationMS,
			run.FinalModel,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	zooms, err := st.Zooms(meta.ID)
	if err != nil {
		return err
	}
	if len(zooms) == 0 {
		return fmt.Errorf("run %s has no frames", meta.ID)
	}

	caption := fmt.Sprintf("%s - zoom per step", meta.Tour)
	graph := asciigraph.Plot(zooms,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
		asciigraph.LowerBound(viewer.MinZoom),
		asciigraph.UpperBound(viewer.MaxZoom),
	)
	fmt.Println(graph)
	return nil
}
