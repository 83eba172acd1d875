package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/imamik/monoff/internal/config"
	"github.com/imamik/monoff/internal/encoder"
	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/logger"
	"github.com/imamik/monoff/internal/pipeline"
	"github.com/imamik/monoff/internal/surface"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "monoff",
	Short: "Frame, filter and export photos at native resolution",
	Long: `monoff renders a photo inside a coloured frame with a padded inner area,
applies a colour filter, film grain and vignette, and exports a PNG at the
photo's full resolution.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a single image",
	RunE:  runExport,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Export every image in a directory",
	RunE:  runBatch,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a screen-sized preview of an export",
	RunE:  runPreview,
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List filter categories and variants",
	RunE:  runFilters,
}

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "List frame ratio presets by orientation",
	RunE:  runRatios,
}

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Render a thumbnail per variant of a filter category",
	RunE:  runThumbs,
}

var (
	configPath      string
	inputPath       string
	outputPath      string
	ratio           string
	frameWidth      float64
	frameColor      string
	backgroundColor string
	filterName      string
	grain           float64
	vignette        float64
	compression     string
	logLevel        string
	workers         int
	containerWidth  float64
	containerHeight float64
	thumbSize       int
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error, silent")

	for _, cmd := range []*cobra.Command{exportCmd, batchCmd, previewCmd} {
		f := cmd.Flags()
		f.StringVarP(&inputPath, "input", "i", "", "Input image file or directory (required)")
		f.StringVarP(&outputPath, "output", "o", "", "Output PNG file or directory (required)")
		f.StringVarP(&ratio, "ratio", "r", "1:1", "Frame aspect ratio: a preset like 4:5, any W:H, or a decimal")
		f.Float64VarP(&frameWidth, "frame-width", "w", 0, "Frame width as a percent of the shorter side (0-50)")
		f.StringVar(&frameColor, "frame-color", "#FFFFFF", "Frame colour: hex or a palette name")
		f.StringVar(&backgroundColor, "background", "#000000", "Background colour behind the image: hex or a palette name")
		f.StringVarP(&filterName, "filter", "f", filters.NoneCategory, "Filter as Category or Category/Variant")
		f.Float64VarP(&grain, "grain", "g", 0, "Film grain intensity (0-1)")
		f.Float64VarP(&vignette, "vignette", "v", 0, "Vignette intensity (0-1)")
		f.StringVar(&compression, "compression", "default", "PNG compression: default, none, fast, best")
		_ = cmd.MarkFlagRequired("input")
		_ = cmd.MarkFlagRequired("output")
	}
	batchCmd.Flags().IntVarP(&workers, "workers", "j", 4, "Concurrent exports")
	previewCmd.Flags().Float64Var(&containerWidth, "width", 390, "Preview container width")
	previewCmd.Flags().Float64Var(&containerHeight, "height", 520, "Preview container height")

	thumbsCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input image file (required)")
	thumbsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (required)")
	thumbsCmd.Flags().StringVarP(&filterName, "filter", "f", "", "Filter category (required)")
	thumbsCmd.Flags().IntVarP(&thumbSize, "size", "s", filters.DefaultThumbSize, "Thumbnail edge length in pixels")
	_ = thumbsCmd.MarkFlagRequired("input")
	_ = thumbsCmd.MarkFlagRequired("output")
	_ = thumbsCmd.MarkFlagRequired("filter")

	rootCmd.AddCommand(exportCmd, batchCmd, previewCmd, filtersCmd, ratiosCmd, thumbsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config (or the defaults) and lets explicitly set flags
// override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(configPath); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("ratio") {
		cfg.Ratio = ratio
	}
	if changed("frame-width") {
		cfg.FrameWidth = frameWidth
	}
	if changed("frame-color") {
		cfg.FrameColor = frameColor
	}
	if changed("background") {
		cfg.BackgroundColor = backgroundColor
	}
	if changed("filter") {
		cfg.Filter = parseFilter(filterName)
	}
	if changed("grain") {
		cfg.Grain = grain
	}
	if changed("vignette") {
		cfg.Vignette = vignette
	}
	if changed("compression") {
		cfg.PNGCompression = compression
	}
	if changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if changed("workers") {
		cfg.Workers = workers
	}
	if changed("size") {
		cfg.ThumbSize = thumbSize
	}

	return cfg, cfg.Validate()
}

func parseFilter(s string) config.FilterConfig {
	category, variant, _ := strings.Cut(s, "/")
	return config.FilterConfig{Category: strings.TrimSpace(category), Variant: strings.TrimSpace(variant)}
}

func newExporter(cfg config.Config) (*pipeline.Exporter, logger.Logger) {
	log := logger.NewConsole(cfg.Level())
	return pipeline.New(
		pipeline.WithAllocator(surface.NewAllocator(cfg.Limits())),
		pipeline.WithEncoder(cfg.Encoder()),
		pipeline.WithLogger(log),
	), log
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.ToEditParameters()
	if err != nil {
		return err
	}
	exp, log := newExporter(cfg)
	if configPath != "" {
		log.Debug("Loaded config from %s", configPath)
	}

	start := time.Now()
	log.Info("Exporting %s", inputPath)
	if err := exp.ExportFile(inputPath, outputPath, params); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.Info("Done: %s (%dms)", outputPath, time.Since(start).Milliseconds())
	return nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// batchJobs maps every image in inputDir to a PNG in outputDir. The source
// extension is kept in the name so shot.jpg and shot.png stay distinct.
func batchJobs(inputDir, outputDir string, params pipeline.EditParameters) ([]pipeline.Job, error) {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var jobs []pipeline.Job
	for _, f := range files {
		if f.IsDir() || !isImage(f.Name()) {
			continue
		}
		ext := filepath.Ext(f.Name())
		base := strings.TrimSuffix(f.Name(), ext)
		jobs = append(jobs, pipeline.Job{
			Input:  filepath.Join(inputDir, f.Name()),
			Output: filepath.Join(outputDir, fmt.Sprintf("%s_%s_framed.png", base, ext[1:])),
			Params: params,
		})
	}
	return jobs, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.ToEditParameters()
	if err != nil {
		return err
	}
	exp, log := newExporter(cfg)

	if err := os.MkdirAll(outputPath, 0o755); err != nil { //nolint:gosec // output directory is user facing
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	jobs, err := batchJobs(inputPath, outputPath, params)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Processing %d files with %d workers", len(jobs), cfg.Workers)
	results := exp.Batch(ctx, jobs, cfg.Workers)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if ctx.Err() != nil {
		log.Warn("Interrupted, stopping batch")
	}
	log.Info("Batch finished: %d succeeded, %d failed", len(results)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d exports failed", failed, len(results))
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.ToEditParameters()
	if err != nil {
		return err
	}
	exp, log := newExporter(cfg)

	src, err := pipeline.Load(inputPath)
	if err != nil {
		return err
	}
	params.Source = src

	img, err := exp.Preview(params, containerWidth, containerHeight)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	data, err := cfg.Encoder().Encode(img)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := pipeline.Save(outputPath, data); err != nil {
		return err
	}

	log.Info("Output saved to %s", outputPath)
	return nil
}

func runFilters(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, filters.NoneCategory)
	for _, g := range filters.Groups() {
		names := make([]string, len(g.Variants))
		for i, v := range g.Variants {
			names[i] = v.Name
		}
		fmt.Fprintf(out, "%s: %s\n", g.Category, strings.Join(names, ", "))
	}
	return nil
}

func runRatios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, o := range []frames.Orientation{frames.OrientationPortrait, frames.OrientationLandscape} {
		labels := []string{}
		for _, r := range frames.RatiosFor(o) {
			labels = append(labels, r.Label)
		}
		fmt.Fprintf(out, "%s: %s\n", o, strings.Join(labels, ", "))
	}
	return nil
}

func runThumbs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.NewConsole(cfg.Level())

	g, ok := filters.Lookup(filterName)
	if !ok {
		return fmt.Errorf("%w: %q", filters.ErrUnknownCategory, filterName)
	}

	src, err := pipeline.Load(inputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil { //nolint:gosec // output directory is user facing
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var enc encoder.Encoder = cfg.Encoder()
	for _, v := range g.Variants {
		data, err := enc.Encode(filters.Thumbnail(src, v.Matrix, cfg.ThumbSize))
		if err != nil {
			return fmt.Errorf("%s: %w", v.Name, err)
		}
		name := fmt.Sprintf("%s_%s.png", strings.ToLower(g.Category), strings.ToLower(v.Name))
		path := filepath.Join(outputPath, name)
		if err := pipeline.Save(path, data); err != nil {
			return err
		}
		log.Info("Output saved to %s", path)
	}
	return nil
}
