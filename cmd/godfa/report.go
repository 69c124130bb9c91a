package main

import (
	"math"

	"github.com/sartorproj/godfa/dfa"
)

// FluctuationReport is the result of the fluct command.
type FluctuationReport struct {
	Name       string  `json:"name" yaml:"name"`
	Samples    int     `json:"samples" yaml:"samples"`
	WindowSize int     `json:"window_size" yaml:"window_size"`
	Windows    int     `json:"windows" yaml:"windows"`
	Dropped    int     `json:"dropped" yaml:"dropped"`
	F          float64 `json:"f" yaml:"f"`
}

// SweepPointReport is one row of a sweep report.
type SweepPointReport struct {
	WindowSize    int      `json:"window_size" yaml:"window_size"`
	F             float64  `json:"f" yaml:"f"`
	LogWindowSize float64  `json:"log_window_size" yaml:"log_window_size"`
	LogF          *float64 `json:"log_f,omitempty" yaml:"log_f,omitempty"` // nil when F is 0
	Fitted        bool     `json:"fitted" yaml:"fitted"`
}

// SweepReport is the result of the sweep command.
type SweepReport struct {
	Name              string             `json:"name" yaml:"name"`
	Samples           int                `json:"samples" yaml:"samples"`
	InitialWindowSize int                `json:"initial_window_size" yaml:"initial_window_size"`
	PointCount        int                `json:"point_count" yaml:"point_count"`
	Spacing           string             `json:"spacing" yaml:"spacing"`
	Alpha             float64            `json:"alpha" yaml:"alpha"`
	Intercept         float64            `json:"intercept" yaml:"intercept"`
	RSquared          float64            `json:"r_squared" yaml:"r_squared"`
	Regime            string             `json:"regime" yaml:"regime"`
	Points            []SweepPointReport `json:"points" yaml:"points"`
}

func newFluctuationReport(name string, samples int, res *dfa.FluctuationResult) FluctuationReport {
	return FluctuationReport{
		Name:       name,
		Samples:    samples,
		WindowSize: res.WindowSize,
		Windows:    len(res.Windows),
		Dropped:    res.Dropped,
		F:          res.F,
	}
}

func newSweepReport(name string, samples int, sweep dfa.SweepConfig, a *dfa.Analysis) SweepReport {
	fitted := make(map[int]bool, len(a.Scaling.Points))
	for _, p := range a.Scaling.Points {
		fitted[p.WindowSize] = true
	}

	points := make([]SweepPointReport, 0, len(a.Sweep.Points))
	for _, p := range a.Sweep.Points {
		var logF *float64
		if p.F > 0 {
			v := math.Log10(p.F)
			logF = &v
		}
		points = append(points, SweepPointReport{
			WindowSize:    p.WindowSize,
			F:             p.F,
			LogWindowSize: math.Log10(float64(p.WindowSize)),
			LogF:          logF,
			Fitted:        fitted[p.WindowSize],
		})
	}

	return SweepReport{
		Name:              name,
		Samples:           samples,
		InitialWindowSize: sweep.InitialWindowSize,
		PointCount:        sweep.PointCount,
		Spacing:           string(sweep.Spacing),
		Alpha:             a.Scaling.Alpha,
		Intercept:         a.Scaling.Intercept,
		RSquared:          a.Scaling.RSquared,
		Regime:            dfa.Classify(a.Scaling.Alpha).String(),
		Points:            points,
	}
}
