package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/synth"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

var sweepConfig = dfa.SweepConfig{InitialWindowSize: 8, PointCount: 4}

func analysis(t *testing.T) *dfa.Analysis {
	t.Helper()
	a, err := dfa.ScalingExponent(context.Background(), synth.WhiteNoise(256, 1), sweepConfig, nil)
	require.NoError(t, err)
	return a
}

func TestRendererSweepMemory(t *testing.T) {
	series := synth.WhiteNoise(256, 1)

	sink := &MemorySink{}
	r := &Renderer{Sink: sink, Options: Options{TimeSeries: true, Integrated: true, Epochs: true, LogLog: true}}
	observe, plotErr := r.EpochObserver()
	a, err := dfa.ScalingExponentObserved(context.Background(), series, sweepConfig, nil, observe)
	require.NoError(t, err)
	require.NoError(t, plotErr())
	require.NoError(t, r.Sweep("noise", series, a))

	want := []string{SweepName("noise"), SeriesName("noise")}
	for _, p := range a.Sweep.Points {
		want = append(want, EpochName(p.WindowSize))
	}
	assert.ElementsMatch(t, want, sink.Names())

	img, ok := sink.Image("DFA_Plot_noise")
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestRendererOptions(t *testing.T) {
	series := synth.WhiteNoise(256, 1)
	a := analysis(t)

	sink := &MemorySink{}
	r := &Renderer{Sink: sink, Options: Options{LogLog: true}}
	require.NoError(t, r.Sweep("noise", series, a))
	assert.Equal(t, []string{"DFA_Plot_noise"}, sink.Names())

	// Epoch plots only come from the observer.
	observe, plotErr := r.EpochObserver()
	res, err := dfa.Fluctuation(series, 16)
	require.NoError(t, err)
	observe(res)
	require.NoError(t, plotErr())
	assert.Equal(t, []string{"DFA_Plot_noise"}, sink.Names())

	sink = &MemorySink{}
	r = &Renderer{Sink: sink}
	assert.False(t, r.Options.Enabled())
	require.NoError(t, r.Sweep("noise", series, a))
	assert.Empty(t, sink.Names())
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	series := synth.WhiteNoise(128, 2)

	res, err := dfa.Fluctuation(series, 16)
	require.NoError(t, err)

	sink := &DirSink{Dir: dir}
	r := &Renderer{Sink: sink, Options: Options{TimeSeries: true}}
	require.NoError(t, r.Fluctuation(res))
	require.NoError(t, r.Series(series, "noise"))

	for _, name := range []string{"Epoch16.png", "Time_series_noise.png"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(b, pngMagic), name)
	}
	assert.Equal(t, filepath.Join(dir, "Epoch16.png"), sink.Path("Epoch16"))
}

func TestDirSinkFailure(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	series := synth.WhiteNoise(128, 2)
	res, err := dfa.Fluctuation(series, 16)
	require.NoError(t, err)

	r := &Renderer{Sink: &DirSink{Dir: filepath.Join(blocker, "plots")}}
	err = r.Fluctuation(res)
	assert.ErrorIs(t, err, dfa.ErrIOFailure)

	// The observer keeps the first failure and stops saving.
	r.Options.Epochs = true
	observe, plotErr := r.EpochObserver()
	observe(res)
	observe(res)
	assert.ErrorIs(t, plotErr(), dfa.ErrIOFailure)
}

func TestSweepPlotTitle(t *testing.T) {
	a := analysis(t)

	p, err := SweepPlot("", a.Scaling)
	require.NoError(t, err)
	assert.Equal(t, "DFA - no file name provided", p.Title.Text)

	p, err = SweepPlot("eeg", a.Scaling)
	require.NoError(t, err)
	assert.Equal(t, "DFA - eeg", p.Title.Text)
	assert.Equal(t, "log10 Window size", p.X.Label.Text)

	g := newGrid()
	assert.Equal(t, LightGray, g.Vertical.Color)
	assert.Equal(t, LightGray, g.Horizontal.Color)
}

func TestWindowColor(t *testing.T) {
	assert.Equal(t, Blue, WindowColor(0))
	assert.Equal(t, Blue, WindowColor(7))
	assert.Equal(t, Orange, WindowColor(8))
	assert.Equal(t, uint8(0x61), Blue.R)
	assert.Equal(t, uint8(0xEF), Blue.B)
}
