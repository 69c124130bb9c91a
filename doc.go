// Package godfa provides Detrended Fluctuation Analysis (DFA) of time series.
//
// DFA quantifies long-range correlation by integrating a signal, removing a
// local linear trend in non-overlapping windows, and measuring how the RMS of
// the residuals, the fluctuation F(n), grows with the window size n. The slope
// alpha of log10 F against log10 n separates uncorrelated noise (0.5),
// persistent signals (0.5 to 1), 1/f noise (1) and Brownian motion (1.5).
//
// # Quick Start
//
// Fluctuation at a single window size:
//
//	series, _ := timeseries.LoadText("signal.txt", timeseries.DefaultTextOptions())
//	res, err := dfa.Fluctuation(series, 100)
//
// Scaling exponent over 45 log-spaced window sizes from 10 to N/4:
//
//	analysis, err := dfa.ScalingExponent(ctx, series, dfa.DefaultSweepConfig(), nil)
//	fmt.Println(analysis.Scaling.Alpha, dfa.Classify(analysis.Scaling.Alpha))
//
// # Packages
//
//   - dfa: fluctuation, window size sweep and scaling fit
//   - timeseries: series type, integration and text file loading
//   - stats: line fitting, window size spacing, autocorrelation
//   - synth: reproducible white noise, AR(1), random walk and fractional Gaussian noise
//   - render: gonum/plot figures of windows, series and sweeps
//
// The godfa command in cmd/godfa exposes the same analysis on files.
//
// # References
//
//   - Peng, C.-K. et al. (1994). Mosaic organization of DNA nucleotides. Phys. Rev. E 49, 1685.
//   - Davies, R. B., & Harte, D. S. (1987). Tests for Hurst effect. Biometrika 74, 95-101.
package godfa
