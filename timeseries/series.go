// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinLen is the smallest series length that can be analyzed.
const MinLen = 4

// ErrInvalidInput reports a series that cannot be analyzed: mismatched lengths,
// too few samples, non-finite values or a time axis that is not strictly increasing.
var ErrInvalidInput = errors.New("invalid input")

// Series represents a sampled signal: amplitude values at strictly increasing times.
type Series struct {
	Times  []float64
	Values []float64
	Name   string
}

// New creates a new time series from values, using the sample index as time.
func New(values []float64) *Series {
	times := make([]float64, len(values))
	for i := range times {
		times[i] = float64(i)
	}
	return &Series{
		Times:  times,
		Values: values,
	}
}

// NewWithTimes creates a time series with an explicit time axis.
func NewWithTimes(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times but %d values", ErrInvalidInput, len(times), len(values))
	}
	return &Series{
		Times:  times,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Validate checks the preconditions shared by every fluctuation analysis.
func (s *Series) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil series", ErrInvalidInput)
	}
	if len(s.Times) != len(s.Values) {
		return fmt.Errorf("%w: %d times but %d values", ErrInvalidInput, len(s.Times), len(s.Values))
	}
	if len(s.Values) < MinLen {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidInput, MinLen, len(s.Values))
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value at index %d", ErrInvalidInput, i)
		}
	}
	for i, t := range s.Times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: non-finite time at index %d", ErrInvalidInput, i)
		}
		if i > 0 && t <= s.Times[i-1] {
			return fmt.Errorf("%w: time not strictly increasing at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Integrate returns the profile of the series: the cumulative sum of the
// mean-centered values. The series itself is not modified.
func (s *Series) Integrate() []float64 {
	n := len(s.Values)
	if n == 0 {
		return []float64{}
	}

	centered := make([]float64, n)
	copy(centered, s.Values)
	floats.AddConst(-s.Mean(), centered)

	return floats.CumSum(make([]float64, n), centered)
}

// Diff returns the first difference of the series. Each difference is stamped
// with the later of its two times.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Times: []float64{}, Values: []float64{}, Name: s.Name + "_diff"}
	}

	values := make([]float64, len(s.Values)-1)
	floats.SubTo(values, s.Values[1:], s.Values[:len(s.Values)-1])

	times := make([]float64, len(values))
	copy(times, s.Times[1:])

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name + "_diff",
	}
}

// Offset returns a copy of the series with c added to every value.
func (s *Series) Offset(c float64) *Series {
	out := s.Copy()
	floats.AddConst(c, out.Values)
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}
