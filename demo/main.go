// Package main samples an autoregressive process and writes it as CSV.
//
// Usage:
//
//	demo [-config ar.yml] [-preset name] [-n samples] [-seed s] [-out file] [-quiet]
//	demo -all
//
// Without -config the model comes from -preset (default "ar1"). Flags given
// on the command line override values from the config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/sartorproj/goar/ar"
	"github.com/sartorproj/goar/config"
	"github.com/sartorproj/goar/stats"
	"github.com/sartorproj/goar/timeseries"
)

// Preset is a named model configuration
type Preset struct {
	Description  string
	Offset       float64
	Coefficients []float64
}

var presets = map[string]Preset{
	"white-noise": {Description: "Gaussian white noise", Coefficients: nil},
	"ar1":         {Description: "AR(1), c=5, phi=0.5", Offset: 5, Coefficients: []float64{0.5}},
	"ar1-weak":    {Description: "AR(1), phi=0.3", Coefficients: []float64{0.3}},
	"ar1-strong":  {Description: "AR(1), phi=0.9", Coefficients: []float64{0.9}},
	"ar2":         {Description: "AR(2), phi=[0.3, 0.3]", Coefficients: []float64{0.3, 0.3}},
	"ar2-cyclic":  {Description: "AR(2), phi=[0.9, -0.8], damped oscillation", Coefficients: []float64{0.9, -0.8}},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config")
	presetName := fs.String("preset", "ar1", "built-in model when no config is given ("+presetNames()+")")
	samples := fs.Int("n", 0, "number of samples (overrides config)")
	seed := fs.Uint64("seed", 0, "random seed (overrides config)")
	out := fs.String("out", "", "output CSV file (default stdout)")
	all := fs.Bool("all", false, "sample every preset and log a summary, no CSV")
	quiet := fs.Bool("quiet", false, "only log warnings and errors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	override := func(cfg *config.Config) {
		if set["n"] {
			cfg.Samples = *samples
		}
		if set["seed"] {
			s := *seed
			cfg.Seed = &s
		}
	}

	if *all {
		names := strings.Split(presetNames(), ", ")
		for i, name := range names {
			cfg := fromPreset(presets[name])
			override(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			series, err := sample(cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("preset", "index", i+1, "of", len(names), "name", name, "description", presets[name].Description)
			logSummary(logger, series)
		}
		return nil
	}

	var cfg *config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	} else {
		p, ok := presets[*presetName]
		if !ok {
			return fmt.Errorf("unknown preset %q (have %s)", *presetName, presetNames())
		}
		cfg = fromPreset(p)
	}
	override(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("sampling",
		"offset", cfg.Offset,
		"noise_variance", cfg.NoiseVariance,
		"coefficients", cfg.Coefficients,
		"precision", cfg.Precision,
		"samples", cfg.Samples,
		"burn_in", cfg.BurnIn,
	)

	series, err := sample(cfg)
	if err != nil {
		return err
	}
	logSummary(logger, series)

	if *out != "" {
		if err := timeseries.SaveCSV(series, *out, nil); err != nil {
			return err
		}
		logger.Info("wrote samples", "file", *out, "rows", series.Len())
		return nil
	}
	return timeseries.WriteCSV(stdout, series, nil)
}

func presetNames() string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func fromPreset(p Preset) *config.Config {
	cfg := config.Default()
	cfg.Offset = p.Offset
	cfg.Coefficients = p.Coefficients
	return cfg
}

// sample draws cfg.Samples values at the configured precision.
func sample(cfg *config.Config) (*timeseries.Series, error) {
	var series *timeseries.Series
	var err error
	switch cfg.Precision {
	case config.Float32:
		series, err = sampleAs[float32](cfg)
	default:
		series, err = sampleAs[float64](cfg)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Start != "" {
		start, _ := cfg.StartTime()
		interval, _ := cfg.IntervalDuration()
		series.Stamp(start, interval)
	}
	return series, nil
}

func sampleAs[F constraints.Float](cfg *config.Config) (*timeseries.Series, error) {
	phi := make([]F, len(cfg.Coefficients))
	for i, c := range cfg.Coefficients {
		phi[i] = F(c)
	}

	var opts []ar.Option
	if cfg.Seed != nil {
		opts = append(opts, ar.WithSeed(*cfg.Seed))
	}

	gen, err := ar.New(F(cfg.Offset), F(cfg.NoiseVariance), phi, opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < cfg.BurnIn; i++ {
		gen.Step()
	}
	return timeseries.Collect(gen.All(), cfg.Samples), nil
}

// logSummary logs descriptive statistics of the sampled values
func logSummary(logger *slog.Logger, series *timeseries.Series) {
	attrs := []any{
		"n", series.Len(),
		"mean", series.Mean(),
		"std", series.Std(),
		"min", series.Min(),
		"max", series.Max(),
	}
	if acf := stats.ACF(series, 1); len(acf) > 1 {
		attrs = append(attrs, "acf1", acf[1])
	}
	if lb := stats.LjungBox(series, min(10, series.Len()/5), 0); lb != nil {
		attrs = append(attrs, "ljung_box_p", lb.PValue)
	}
	logger.Info("summary", attrs...)
}
