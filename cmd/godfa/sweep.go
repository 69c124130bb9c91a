package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/render"
	"github.com/sartorproj/godfa/timeseries"
)

// sweepCmd fits the scaling exponent over a range of window sizes.
var sweepCmd = &cobra.Command{
	Use:   "sweep <file>",
	Short: "Sweep window sizes and fit the DFA scaling exponent",
	Long: `Compute F for window sizes from --initial up to N/4 and fit log10 F against
log10 n. The slope is the scaling exponent alpha:

  alpha < 0.5   anti-persistent
  alpha ~ 0.5   uncorrelated (white noise)
  0.5 - 1       persistent long-range correlation
  alpha ~ 1     1/f noise
  alpha ~ 1.5   Brownian motion

With --save-path the fitted log-log points are also written to DFA_Data_<name>.txt.

Examples:
  # 45 log-spaced window sizes from 10 to N/4
  godfa sweep signal.txt

  # 20 linearly spaced sizes, JSON report, log-log plot
  godfa sweep signal.txt --points 20 --spacing linear --output json \
      --plot-loglog --save-path plots/`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSweep(cmd.Context(), cfg)
	},
}

func runSweep(ctx context.Context, cfg *Config) error {
	series, err := loadSeries(cfg)
	if err != nil {
		return err
	}
	return analyzeSeries(ctx, cfg, series)
}

// analyzeSeries sweeps series, saves the requested plots and data, and prints the report.
func analyzeSeries(ctx context.Context, cfg *Config, series *timeseries.Series) error {
	progress := func(fraction float64) {
		log.Debug().Float64("progress", fraction).Msg("sweep")
	}

	renderer := &render.Renderer{Sink: &render.DirSink{Dir: cfg.SavePath}, Options: cfg.Plots}
	plotEpoch, plotErr := renderer.EpochObserver()
	observe := func(res *dfa.FluctuationResult) {
		log.Debug().Int("window_size", res.WindowSize).Float64("f", res.F).Int("windows", len(res.Windows)).Msg("window size done")
		plotEpoch(res)
	}

	analysis, err := dfa.ScalingExponentObserved(ctx, series, cfg.Sweep, progress, observe)
	if err != nil {
		return err
	}
	if err := plotErr(); err != nil {
		return err
	}
	log.Info().Str("name", cfg.Name).Float64("alpha", analysis.Scaling.Alpha).Int("points", len(analysis.Sweep.Points)).Msg("sweep complete")

	if cfg.SavePath != "" {
		if err := saveData(cfg.SavePath, cfg.Name, analysis); err != nil {
			return err
		}
	}
	if cfg.Plots.Enabled() {
		if err := renderer.Sweep(cfg.Name, series, analysis); err != nil {
			return err
		}
		log.Info().Str("dir", cfg.SavePath).Msg("plots saved")
	}

	return printSweep(cfg, newSweepReport(cfg.Name, series.Len(), cfg.Sweep, analysis))
}

// dataFileName is the sweep data file written next to the plots.
func dataFileName(name string) string {
	return "DFA_Data_" + name + ".txt"
}

func saveData(dir, name string, analysis *dfa.Analysis) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}

	path := filepath.Join(dir, dataFileName(name))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %v", dfa.ErrIOFailure, cerr)
		}
	}()

	if err := analysis.WriteData(f); err != nil {
		return fmt.Errorf("%w: writing %s: %v", dfa.ErrIOFailure, path, err)
	}
	log.Debug().Str("file", path).Msg("sweep data saved")
	return nil
}
