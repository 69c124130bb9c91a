package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrDegenerateFit is returned when a line cannot be fitted: fewer than two
// points, mismatched lengths or an x axis with no spread.
var ErrDegenerateFit = errors.New("degenerate linear fit")

// LinearFit is a least-squares line y = Intercept + Slope*x.
type LinearFit struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
	N         int     `json:"n" yaml:"n"`
}

// FitLine fits a degree-1 polynomial to (x, y) by ordinary least squares.
func FitLine(x, y []float64) (*LinearFit, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values but %d y values", ErrDegenerateFit, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateFit, len(x))
	}
	if stat.Variance(x, nil) == 0 {
		return nil, fmt.Errorf("%w: x values are constant", ErrDegenerateFit)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	// A constant y is fitted exactly; gonum reports 0/0 there.
	r2 := 1.0
	if stat.Variance(y, nil) > 0 {
		r2 = stat.RSquared(x, y, nil, alpha, beta)
	}

	return &LinearFit{
		Slope:     beta,
		Intercept: alpha,
		RSquared:  r2,
		N:         len(x),
	}, nil
}

// Predict evaluates the fitted line at x.
func (f *LinearFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// Trend evaluates the fitted line at every x.
func (f *LinearFit) Trend(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = f.Predict(xi)
	}
	return out
}

// Residuals returns y - trend(x) for every point.
func (f *LinearFit) Residuals(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = y[i] - f.Predict(xi)
	}
	return out
}

// RMS returns the root mean square of values, or NaN for an empty slice.
func RMS(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(values)))
}
