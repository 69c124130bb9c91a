// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type, a sampled signal with an explicit
// time axis, along with the integration step used by fluctuation analysis
// and a loader for plain numeric text files.
//
// # Creating a Series
//
// Create a time series from a slice, using the sample index as time:
//
//	values := []float64{0.2, -0.4, 1.1, 0.3, -0.8}
//	series := timeseries.New(values)
//
// Or with an explicit time axis:
//
//	series, err := timeseries.NewWithTimes(times, values)
//
// # Validation and Integration
//
//	if err := series.Validate(); err != nil {
//	    // errors.Is(err, timeseries.ErrInvalidInput)
//	}
//	profile := series.Integrate() // cumulative sum of (y - mean(y))
//
// # Loading Text Files
//
// Load whitespace or delimiter separated columns. Column choice and the
// time axis are caller policy:
//
//	opts := timeseries.DefaultTextOptions()
//	opts.ValueColumn = 0
//	opts.SampleRate = 512 // time = (i+1)/512 seconds
//	series, err := timeseries.LoadText("recording.txt", opts)
package timeseries
