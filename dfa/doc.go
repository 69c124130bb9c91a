// Package dfa implements Detrended Fluctuation Analysis (DFA).
//
// DFA measures long-range correlation in a signal by integrating it, removing a
// local linear trend in non-overlapping windows, and observing how the RMS of
// what remains (the fluctuation F) grows with the window size n. For
// F(n) ~ n^alpha the scaling exponent alpha reads:
//
//   - alpha < 0.5: anti-persistent
//   - alpha ~ 0.5: uncorrelated (white noise)
//   - 0.5 < alpha < 1: persistent long-range correlation
//   - alpha ~ 1: 1/f noise
//   - alpha ~ 1.5: Brownian motion
//
// # Fluctuation at One Window Size
//
//	res, err := dfa.Fluctuation(series, 50)
//	if err != nil {
//	    // errors.Is(err, dfa.ErrInvalidWindowSize) when 50 > series.Len()
//	}
//	fmt.Printf("F(50) = %.4f over %d windows\n", res.F, len(res.Windows))
//
// # Scaling Exponent
//
// Sweep window sizes from an initial size up to N/4 and fit log10 F against
// log10 n:
//
//	cfg := dfa.DefaultSweepConfig() // 45 log-spaced sizes starting at 10
//	analysis, err := dfa.ScalingExponent(ctx, series, cfg, func(f float64) {
//	    fmt.Printf("\r%3.0f%%", f*100)
//	})
//	alpha := analysis.Scaling.Alpha
//	fmt.Println(dfa.Classify(alpha))
//
// The sweep checks ctx between window sizes, so a long sweep can be cancelled.
//
// # Errors
//
// Failures wrap one of ErrInvalidInput, ErrInvalidWindowSize,
// ErrDegenerateRegression or ErrIOFailure; test them with errors.Is.
//
// Functions in this package only compute. Plots of the returned windows and
// sweep points are drawn by package render.
package dfa
