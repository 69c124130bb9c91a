package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/render"
	"github.com/sartorproj/godfa/timeseries"
)

// fluctCmd computes the fluctuation at one window size.
var fluctCmd = &cobra.Command{
	Use:   "fluct <file>",
	Short: "Compute the detrended fluctuation F at one window size",
	Long: `Integrate the series, split it into non-overlapping windows of the given size,
remove a least-squares line from each window and report the RMS of the residuals.

Window sizes above N/4 are allowed, up to a single window covering the whole series.

Examples:
  # F at 100 samples, time in column 0 and amplitude in column 1
  godfa fluct signal.txt -w 100

  # Amplitude in the third column sampled at 512 Hz, with the window plot
  godfa fluct eeg.csv -w 256 --delimiter , --value-column 2 --sample-rate 512 \
      --plot-epochs --save-path plots/`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFluct(cmd.Context(), cfg)
	},
}

func runFluct(_ context.Context, cfg *Config) error {
	if cfg.WindowSize == 0 {
		return errors.New("--window-size is required")
	}

	series, err := loadSeries(cfg)
	if err != nil {
		return err
	}

	res, err := dfa.Fluctuation(series, cfg.WindowSize)
	if err != nil {
		return err
	}
	log.Debug().Int("window_size", res.WindowSize).Int("windows", len(res.Windows)).Int("dropped", res.Dropped).Msg("fluctuation computed")

	if cfg.Plots.Enabled() {
		r := &render.Renderer{Sink: &render.DirSink{Dir: cfg.SavePath}, Options: cfg.Plots}
		if err := r.Series(series, cfg.Name); err != nil {
			return err
		}
		if cfg.Plots.Epochs {
			if err := r.Fluctuation(res); err != nil {
				return err
			}
		}
		log.Info().Str("dir", cfg.SavePath).Msg("plots saved")
	}

	return printFluctuation(cfg, newFluctuationReport(cfg.Name, series.Len(), res))
}

// loadSeries reads the configured input file.
func loadSeries(cfg *Config) (*timeseries.Series, error) {
	series, err := timeseries.LoadText(cfg.Input, cfg.Text)
	if err != nil {
		if errors.Is(err, timeseries.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.Join(dfa.ErrIOFailure, err)
	}
	series.Name = cfg.Name
	log.Info().Str("file", cfg.Input).Int("samples", series.Len()).Msg("series loaded")
	return series, nil
}
