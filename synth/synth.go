// Package synth generates reproducible synthetic signals with known correlation
// structure for exercising and calibrating fluctuation analysis.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godfa/timeseries"
)

// ErrInvalidParameter is returned for out-of-range generator parameters.
var ErrInvalidParameter = errors.New("invalid generator parameter")

// Source is a splitmix64 generator. It satisfies math/rand/v2.Source, and its
// output is fixed by the seed on every platform.
type Source struct {
	state uint64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{state: seed}
}

// Uint64 returns the next 64 random bits.
func (s *Source) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in the open interval (0, 1).
func (s *Source) Float64() float64 {
	return (float64(s.Uint64()>>11) + 0.5) / (1 << 53)
}

// Normal returns a standard normal draw by inverse transform sampling.
func (s *Source) Normal() float64 {
	return distuv.UnitNormal.Quantile(s.Float64())
}

// Gaussian returns n independent standard normal draws.
func Gaussian(n int, seed uint64) []float64 {
	src := NewSource(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Normal()
	}
	return out
}

// WhiteNoise returns n samples of unit-variance Gaussian white noise sampled at
// integer times. Its DFA scaling exponent is 0.5.
func WhiteNoise(n int, seed uint64) *timeseries.Series {
	s := timeseries.New(Gaussian(n, seed))
	s.Name = "white_noise"
	return s
}

// AR1 returns n samples of the autoregressive process x[i] = phi*x[i-1] + e[i]
// with standard normal innovations. For |phi| < 1 the first sample is drawn from
// the stationary distribution.
func AR1(n int, phi float64, seed uint64) (*timeseries.Series, error) {
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		return nil, fmt.Errorf("%w: phi must be finite", ErrInvalidParameter)
	}

	e := Gaussian(n, seed)
	values := make([]float64, n)
	if n == 0 {
		return timeseries.New(values), nil
	}

	values[0] = e[0]
	if math.Abs(phi) < 1 {
		values[0] = e[0] / math.Sqrt(1-phi*phi)
	}
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + e[i]
	}

	s := timeseries.New(values)
	s.Name = fmt.Sprintf("ar1_%g", phi)
	return s, nil
}

// RandomWalk returns the cumulative sum of n white noise samples. Its DFA scaling
// exponent is 1.5.
func RandomWalk(n int, seed uint64) *timeseries.Series {
	e := Gaussian(n, seed)
	for i := 1; i < n; i++ {
		e[i] += e[i-1]
	}
	s := timeseries.New(e)
	s.Name = "random_walk"
	return s
}

// FGN returns n samples of unit-variance fractional Gaussian noise with the given
// Hurst exponent in (0, 1), generated exactly by circulant embedding
// (Davies-Harte). Its DFA scaling exponent is approximately hurst.
func FGN(n int, hurst float64, seed uint64) (*timeseries.Series, error) {
	if !(hurst > 0 && hurst < 1) {
		return nil, fmt.Errorf("%w: hurst must be in (0, 1), got %g", ErrInvalidParameter, hurst)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidParameter, n)
	}

	// First row of the 2n x 2n circulant embedding the covariance matrix.
	m := 2 * n
	row := make([]complex128, m)
	for k := 0; k <= n; k++ {
		row[k] = complex(fgnAutocovariance(k, hurst), 0)
	}
	for k := 1; k < n; k++ {
		row[m-k] = row[k]
	}

	fft := fourier.NewCmplxFFT(m)
	eigen := fft.Coefficients(nil, row)

	lambda := make([]float64, m)
	for k, c := range eigen {
		l := real(c)
		if l < 0 {
			if l < -1e-9*float64(m) {
				return nil, fmt.Errorf("%w: circulant embedding is not positive for hurst %g", ErrInvalidParameter, hurst)
			}
			l = 0
		}
		lambda[k] = l
	}

	src := NewSource(seed)
	w := make([]complex128, m)
	w[0] = complex(math.Sqrt(lambda[0]/float64(m))*src.Normal(), 0)
	w[n] = complex(math.Sqrt(lambda[n]/float64(m))*src.Normal(), 0)
	for k := 1; k < n; k++ {
		scale := math.Sqrt(lambda[k] / float64(2*m))
		w[k] = complex(scale*src.Normal(), scale*src.Normal())
		w[m-k] = cmplx.Conj(w[k])
	}

	seq := fft.Sequence(nil, w)
	values := make([]float64, n)
	for i := range values {
		values[i] = real(seq[i])
	}

	s := timeseries.New(values)
	s.Name = fmt.Sprintf("fgn_h%g", hurst)
	return s, nil
}

// fgnAutocovariance is the lag-k autocovariance of unit-variance fractional
// Gaussian noise.
func fgnAutocovariance(k int, hurst float64) float64 {
	h2 := 2 * hurst
	fk := float64(k)
	return 0.5 * (math.Pow(math.Abs(fk+1), h2) - 2*math.Pow(fk, h2) + math.Pow(math.Abs(fk-1), h2))
}
