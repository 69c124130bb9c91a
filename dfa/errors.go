package dfa

import (
	"errors"

	"github.com/sartorproj/godfa/timeseries"
)

var (
	// ErrInvalidInput reports unusable series data: mismatched lengths, fewer
	// than four samples, non-finite values or a non-increasing time axis.
	ErrInvalidInput = timeseries.ErrInvalidInput

	// ErrInvalidWindowSize reports a window size below 2, a window larger than
	// the series, or a sweep whose initial size is not below N/4.
	ErrInvalidWindowSize = errors.New("invalid window size")

	// ErrDegenerateRegression reports a log-log fit with fewer than two usable points.
	ErrDegenerateRegression = errors.New("degenerate regression")

	// ErrIOFailure reports a plot or data file that could not be written.
	ErrIOFailure = errors.New("io failure")
)
