// Package stats provides the numeric helpers behind fluctuation analysis.
//
// # Line Fitting
//
// Fit a least-squares line and inspect residuals:
//
//	fit, err := stats.FitLine(x, y)
//	if err != nil {
//	    // errors.Is(err, stats.ErrDegenerateFit)
//	}
//	trend := fit.Trend(x)
//	residuals := fit.Residuals(x, y)
//	rms := stats.RMS(residuals)
//
// # Window Size Spacing
//
// Generate integer scales between two bounds:
//
//	sizes := stats.LogSpacedSizes(10, 250, 20)    // log spaced, rounded, unique
//	linear := stats.LinearSpacedSizes(10, 250, 20)
//
// # Autocorrelation
//
// Short-range correlation diagnostics:
//
//	acf := stats.ACF(series, 20)
//	res := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(res.Values, res.ConfBounds)
package stats
