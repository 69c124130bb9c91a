// Package render draws the results of package dfa with gonum/plot.
//
// Plots are handed to a Sink. DirSink writes PNG files named after the plot:
//
//	Time_series_<name>.png  raw and integrated series
//	Epoch<size>.png         windows and local trends at one window size
//	DFA_Plot_<name>.png     log-log sweep with the fitted scaling line
//
// MemorySink keeps the encoded images in memory.
package render
