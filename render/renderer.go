package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/timeseries"
)

// Options selects which plots a Renderer produces.
type Options struct {
	TimeSeries bool // Raw series, saved as Time_series_<name>
	Integrated bool // Integrated series, drawn on the Time_series_<name> plot
	Epochs     bool // One Epoch<size> plot per window size
	LogLog     bool // Sweep fit, saved as DFA_Plot_<name>
}

// Enabled reports whether any plot is requested.
func (o Options) Enabled() bool {
	return o.TimeSeries || o.Integrated || o.Epochs || o.LogLog
}

// Renderer draws fluctuation results and sweeps into a Sink.
type Renderer struct {
	Sink    Sink
	Options Options
}

// EpochName is the plot name for the windows of one window size.
func EpochName(windowSize int) string {
	return fmt.Sprintf("Epoch%d", windowSize)
}

// SeriesName is the plot name for the series plot of name.
func SeriesName(name string) string {
	return "Time_series_" + name
}

// SweepName is the plot name for the log-log sweep plot of name.
func SweepName(name string) string {
	return "DFA_Plot_" + name
}

// Fluctuation plots the integrated series of every window of res together with
// its fitted trend and a dashed marker at the end of the window.
func (r *Renderer) Fluctuation(res *dfa.FluctuationResult) error {
	p, err := EpochPlot(res)
	if err != nil {
		return err
	}
	return r.Sink.Save(p, EpochName(res.WindowSize))
}

// Series plots the raw and/or integrated series, as selected by the options.
// It does nothing when neither is selected.
func (r *Renderer) Series(series *timeseries.Series, name string) error {
	if !r.Options.TimeSeries && !r.Options.Integrated {
		return nil
	}
	p, err := SeriesPlot(series, r.Options.TimeSeries, r.Options.Integrated)
	if err != nil {
		return err
	}
	return r.Sink.Save(p, SeriesName(name))
}

// EpochObserver returns an observer for dfa.ScalingExponentObserved that saves
// one epoch plot per window size while the sweep runs, and a function reporting
// the first save error. The observer does nothing unless Epochs is set.
func (r *Renderer) EpochObserver() (func(*dfa.FluctuationResult), func() error) {
	var first error
	observe := func(res *dfa.FluctuationResult) {
		if !r.Options.Epochs || first != nil {
			return
		}
		first = r.Fluctuation(res)
	}
	return observe, func() error { return first }
}

// Sweep draws the series and log-log plots the options select for a completed
// analysis. Epoch plots come from EpochObserver during the sweep.
func (r *Renderer) Sweep(name string, series *timeseries.Series, analysis *dfa.Analysis) error {
	if err := r.Series(series, name); err != nil {
		return err
	}

	if !r.Options.LogLog {
		return nil
	}
	p, err := SweepPlot(name, analysis.Scaling)
	if err != nil {
		return err
	}
	return r.Sink.Save(p, SweepName(name))
}

// EpochPlot builds the window plot of one fluctuation result.
func EpochPlot(res *dfa.FluctuationResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Window size: %d samples", res.WindowSize)
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Amplitude"

	lo, hi := bounds(res.Integrated)
	for i, w := range res.Windows {
		c := WindowColor(i)

		pts, err := plotter.NewScatter(xys(w.Times, w.Integrated))
		if err != nil {
			return nil, err
		}
		pts.GlyphStyle.Color = c
		pts.GlyphStyle.Radius = vg.Points(0.5)
		pts.GlyphStyle.Shape = draw.CircleGlyph{}

		trend, err := plotter.NewLine(xys(w.Times, w.Trend))
		if err != nil {
			return nil, err
		}
		trend.LineStyle.Color = c
		trend.LineStyle.Width = vg.Points(1.5)

		end := w.Times[len(w.Times)-1]
		marker, err := plotter.NewLine(plotter.XYs{{X: end, Y: lo}, {X: end, Y: hi}})
		if err != nil {
			return nil, err
		}
		marker.LineStyle.Color = c
		marker.LineStyle.Width = vg.Points(0.25)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(10), vg.Points(3)}
		marker.LineStyle.DashOffs = vg.Points(5)

		p.Add(pts, trend, marker)
	}
	return p, nil
}

// SeriesPlot builds a plot of the raw series, its integrated profile, or both.
func SeriesPlot(series *timeseries.Series, raw, integrated bool) (*plot.Plot, error) {
	p := plot.New()
	if series.Name != "" {
		p.Title.Text = series.Name
	}
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Amplitude"
	p.Legend.Top = true

	if raw {
		l, err := plotter.NewLine(xys(series.Times, series.Values))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = Blue
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
		p.Legend.Add("Time series", l)
	}

	if integrated {
		l, s, err := plotter.NewLinePoints(xys(series.Times, series.Integrate()))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = Orange
		l.LineStyle.Width = vg.Points(0.5)
		s.GlyphStyle.Color = Orange
		s.GlyphStyle.Radius = vg.Points(0.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(l, s)
		p.Legend.Add("Integrated time series", l)
	}
	return p, nil
}

// SweepPlot builds the log10 F against log10 window size scatter with the
// fitted scaling line.
func SweepPlot(name string, s *dfa.Scaling) (*plot.Plot, error) {
	if name == "" {
		name = "no file name provided"
	}

	p := plot.New()
	p.Title.Text = "DFA - " + name
	p.X.Label.Text = "log10 Window size"
	p.Y.Label.Text = "log10 F"
	p.Add(newGrid())

	pts, err := plotter.NewScatter(xys(s.LogSizes, s.LogF))
	if err != nil {
		return nil, err
	}
	pts.GlyphStyle.Color = Blue
	pts.GlyphStyle.Shape = draw.CircleGlyph{}

	fitted := make([]float64, len(s.LogSizes))
	for i, x := range s.LogSizes {
		fitted[i] = s.Predict(x)
	}
	fit, err := plotter.NewLine(xys(s.LogSizes, fitted))
	if err != nil {
		return nil, err
	}
	fit.LineStyle.Color = Red
	fit.LineStyle.Width = vg.Points(0.75)

	p.Add(pts, fit)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Add(fmt.Sprintf("alpha = %.5f", s.Alpha))
	p.Legend.Add("DFA", pts)
	p.Legend.Add("Linear regression", fit)
	return p, nil
}

func newGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = LightGray
	g.Horizontal.Color = LightGray
	return g
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return floats.Min(values), floats.Max(values)
}
