package dfa

import (
	"fmt"
	"math"

	"github.com/sartorproj/godfa/stats"
	"github.com/sartorproj/godfa/timeseries"
)

// MinWindowSize is the smallest window a line can be fitted to.
const MinWindowSize = 2

// Window is one non-overlapping segment of the integrated series together with
// its local linear trend.
type Window struct {
	Index      int             // Position of the window in the partition
	Start      int             // Index of the first sample in the series
	Times      []float64       // Time values of the window
	Integrated []float64       // Integrated series restricted to the window
	Trend      []float64       // Fitted line evaluated at Times
	Residuals  []float64       // Integrated - Trend
	Fit        stats.LinearFit // Local trend
	F          float64         // RMS of Residuals
}

// FluctuationResult holds the fluctuation of a series at one window size and
// everything needed to draw it.
type FluctuationResult struct {
	WindowSize int
	F          float64   // RMS of the detrended residuals over all windows
	Integrated []float64 // Integrated series, full length
	Windows    []Window
	Dropped    int // Trailing samples not covered by any window
}

// Fluctuation computes the detrended fluctuation F of the series for one window size.
//
// The series is integrated (cumulative sum of the mean-centered values) and split
// into floor(N/windowSize) consecutive windows; trailing samples are dropped. In
// each window a least-squares line of the integrated values against time is
// removed, and F is the root mean square of all residuals.
//
// Window sizes above N/4 are accepted, including a single window covering the
// whole series. A window size below 2 or above N is ErrInvalidWindowSize.
func Fluctuation(series *timeseries.Series, windowSize int) (*FluctuationResult, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	n := series.Len()
	if windowSize < MinWindowSize {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidWindowSize, windowSize, MinWindowSize)
	}
	if windowSize > n {
		return nil, fmt.Errorf("%w: %d exceeds series length %d", ErrInvalidWindowSize, windowSize, n)
	}

	integrated := series.Integrate()
	count := n / windowSize

	result := &FluctuationResult{
		WindowSize: windowSize,
		Integrated: integrated,
		Windows:    make([]Window, 0, count),
		Dropped:    n - count*windowSize,
	}

	sumSq := 0.0
	for w := 0; w < count; w++ {
		start := w * windowSize
		end := start + windowSize
		times := series.Times[start:end]
		profile := integrated[start:end]

		fit, err := stats.FitLine(times, profile)
		if err != nil {
			return nil, fmt.Errorf("%w: window %d: %v", ErrInvalidInput, w, err)
		}

		residuals := fit.Residuals(times, profile)
		for _, r := range residuals {
			sumSq += r * r
		}

		result.Windows = append(result.Windows, Window{
			Index:      w,
			Start:      start,
			Times:      times,
			Integrated: profile,
			Trend:      fit.Trend(times),
			Residuals:  residuals,
			Fit:        *fit,
			F:          stats.RMS(residuals),
		})
	}

	result.F = math.Sqrt(sumSq / float64(count*windowSize))
	return result, nil
}

// ComputeFluctuation is Fluctuation for bare time and amplitude slices,
// returning only F.
func ComputeFluctuation(x, y []float64, windowSize int) (float64, error) {
	series, err := timeseries.NewWithTimes(x, y)
	if err != nil {
		return 0, err
	}
	res, err := Fluctuation(series, windowSize)
	if err != nil {
		return 0, err
	}
	return res.F, nil
}
