package dfa

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sartorproj/godfa/stats"
	"github.com/sartorproj/godfa/timeseries"
)

// Spacing selects how sweep window sizes are distributed.
type Spacing string

const (
	// LogSpacing spaces window sizes evenly in log space.
	LogSpacing Spacing = "log"
	// LinearSpacing spaces window sizes evenly on a linear scale.
	LinearSpacing Spacing = "linear"
)

// ParseSpacing converts a name into a Spacing.
func ParseSpacing(s string) (Spacing, error) {
	switch Spacing(strings.ToLower(strings.TrimSpace(s))) {
	case LogSpacing, "":
		return LogSpacing, nil
	case LinearSpacing:
		return LinearSpacing, nil
	}
	return "", fmt.Errorf("%w: unknown spacing %q (want log or linear)", ErrInvalidInput, s)
}

// Defaults for SweepConfig.
const (
	DefaultInitialWindowSize = 10
	DefaultPointCount        = 45
)

// SweepConfig controls the range of window sizes in a sweep.
type SweepConfig struct {
	InitialWindowSize int     // Smallest window size, must be below N/4
	PointCount        int     // Number of window sizes requested between InitialWindowSize and N/4
	Spacing           Spacing // Log (default) or linear
}

// DefaultSweepConfig returns the default sweep: 45 log-spaced sizes from 10 to N/4.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		InitialWindowSize: DefaultInitialWindowSize,
		PointCount:        DefaultPointCount,
		Spacing:           LogSpacing,
	}
}

// ProgressFunc receives the completed fraction of a sweep, in (0, 1], once per point.
type ProgressFunc func(fraction float64)

// ProgressChannel adapts a channel to a ProgressFunc. Sends never block; an
// update is dropped when the channel is full.
func ProgressChannel(ch chan<- float64) ProgressFunc {
	return func(fraction float64) {
		select {
		case ch <- fraction:
		default:
		}
	}
}

// Point is the fluctuation measured at one window size.
type Point struct {
	WindowSize int     `json:"window_size" yaml:"window_size"`
	F          float64 `json:"f" yaml:"f"`
}

// SweepResult holds the points of a sweep in increasing window size.
type SweepResult struct {
	Points []Point
}

// WindowSizes returns the window sizes a sweep over n samples would visit.
func WindowSizes(n int, cfg SweepConfig) ([]int, error) {
	if cfg.InitialWindowSize < MinWindowSize {
		return nil, fmt.Errorf("%w: initial size %d is below the minimum of %d", ErrInvalidWindowSize, cfg.InitialWindowSize, MinWindowSize)
	}
	if float64(cfg.InitialWindowSize) >= float64(n)/4 {
		return nil, fmt.Errorf("%w: initial size %d must be below N/4 = %g", ErrInvalidWindowSize, cfg.InitialWindowSize, float64(n)/4)
	}
	if cfg.PointCount < 1 {
		return nil, fmt.Errorf("%w: point count must be >= 1, got %d", ErrInvalidInput, cfg.PointCount)
	}

	maxWindow := n / 4
	switch cfg.Spacing {
	case LinearSpacing:
		return stats.LinearSpacedSizes(cfg.InitialWindowSize, maxWindow, cfg.PointCount), nil
	case LogSpacing, "":
		return stats.LogSpacedSizes(cfg.InitialWindowSize, maxWindow, cfg.PointCount), nil
	}
	return nil, fmt.Errorf("%w: unknown spacing %q", ErrInvalidInput, cfg.Spacing)
}

// Sweep computes the fluctuation at every window size of the configured range,
// in increasing order. The context is checked before each point, and progress,
// when not nil, is called after each one.
func Sweep(ctx context.Context, series *timeseries.Series, cfg SweepConfig, progress ProgressFunc) (*SweepResult, error) {
	return sweep(ctx, series, cfg, progress, nil)
}

// sweep is Sweep with an optional per-point observer of the full fluctuation result.
func sweep(ctx context.Context, series *timeseries.Series, cfg SweepConfig, progress ProgressFunc, observe func(*FluctuationResult)) (*SweepResult, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	sizes, err := WindowSizes(series.Len(), cfg)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Points: make([]Point, 0, len(sizes))}
	for i, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := Fluctuation(series, size)
		if err != nil {
			return nil, err
		}
		if observe != nil {
			observe(res)
		}
		result.Points = append(result.Points, Point{WindowSize: size, F: res.F})

		if progress != nil {
			progress(float64(i+1) / float64(len(sizes)))
		}
	}

	return result, nil
}

// Scaling is the log-log fit of fluctuation against window size.
type Scaling struct {
	Alpha     float64   `json:"alpha" yaml:"alpha"`         // Scaling exponent (slope)
	Intercept float64   `json:"intercept" yaml:"intercept"` // log10 F at window size 1
	RSquared  float64   `json:"r_squared" yaml:"r_squared"`
	Points    []Point   `json:"points" yaml:"points"` // Points used in the fit
	LogSizes  []float64 `json:"log_sizes" yaml:"log_sizes"`
	LogF      []float64 `json:"log_f" yaml:"log_f"`
}

// Predict returns the fitted log10 F at log10 window size logSize.
func (s *Scaling) Predict(logSize float64) float64 {
	return s.Intercept + s.Alpha*logSize
}

// FitScaling fits log10(F) against log10(window size). Points with a zero,
// negative or non-finite F are excluded; fewer than two remaining points is
// ErrDegenerateRegression.
func FitScaling(points []Point) (*Scaling, error) {
	s := &Scaling{}
	for _, p := range points {
		if !(p.F > 0) || math.IsInf(p.F, 0) || p.WindowSize <= 0 {
			continue
		}
		s.Points = append(s.Points, p)
		s.LogSizes = append(s.LogSizes, math.Log10(float64(p.WindowSize)))
		s.LogF = append(s.LogF, math.Log10(p.F))
	}

	if len(s.Points) < 2 {
		return nil, fmt.Errorf("%w: %d usable points, need at least 2", ErrDegenerateRegression, len(s.Points))
	}

	fit, err := stats.FitLine(s.LogSizes, s.LogF)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateRegression, err)
	}

	s.Alpha = fit.Slope
	s.Intercept = fit.Intercept
	s.RSquared = fit.RSquared
	return s, nil
}

// Analysis is a completed sweep and its scaling fit.
type Analysis struct {
	Sweep   *SweepResult
	Scaling *Scaling
}

// ScalingExponent sweeps the configured window sizes and fits the scaling exponent.
func ScalingExponent(ctx context.Context, series *timeseries.Series, cfg SweepConfig, progress ProgressFunc) (*Analysis, error) {
	return analyze(ctx, series, cfg, progress, nil)
}

// ScalingExponentObserved is ScalingExponent that also hands every per-window-size
// fluctuation result to observe, for callers that render each sweep point.
func ScalingExponentObserved(ctx context.Context, series *timeseries.Series, cfg SweepConfig, progress ProgressFunc, observe func(*FluctuationResult)) (*Analysis, error) {
	return analyze(ctx, series, cfg, progress, observe)
}

func analyze(ctx context.Context, series *timeseries.Series, cfg SweepConfig, progress ProgressFunc, observe func(*FluctuationResult)) (*Analysis, error) {
	sw, err := sweep(ctx, series, cfg, progress, observe)
	if err != nil {
		return nil, err
	}

	scaling, err := FitScaling(sw.Points)
	if err != nil {
		return nil, err
	}

	return &Analysis{Sweep: sw, Scaling: scaling}, nil
}

// SweepScalingExponent is ScalingExponent for bare time and amplitude slices,
// returning only the exponent.
func SweepScalingExponent(ctx context.Context, x, y []float64, cfg SweepConfig, progress ProgressFunc) (float64, error) {
	series, err := timeseries.NewWithTimes(x, y)
	if err != nil {
		return 0, err
	}
	a, err := ScalingExponent(ctx, series, cfg, progress)
	if err != nil {
		return 0, err
	}
	return a.Scaling.Alpha, nil
}

// WriteData writes the fitted log-log points as two columns under the header
// "Windows_size_log   F_log".
func (a *Analysis) WriteData(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Windows_size_log   F_log"); err != nil {
		return err
	}
	for i := range a.Scaling.LogSizes {
		if _, err := fmt.Fprintf(w, "%f          %f\n", a.Scaling.LogSizes[i], a.Scaling.LogF[i]); err != nil {
			return err
		}
	}
	return nil
}
