package timeseries

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTextFromReaderWhitespace(t *testing.T) {
	data := `0.0   1.5
0.5	  2.5
1.0 3.5

# a comment
1.5 4.5`

	series, err := LoadTextFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, series.Times)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, series.Values)
}

func TestLoadTextHeaderDetection(t *testing.T) {
	data := `time amplitude
1 10
2 20
3 30
4 40`

	series, err := LoadTextFromReader(strings.NewReader(data), DefaultTextOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, series.Len())
	assert.Equal(t, []float64{10, 20, 30, 40}, series.Values)
}

func TestLoadTextDeclaredHeader(t *testing.T) {
	// A numeric header row is still skipped when declared.
	data := `0 0
1 10
2 20`

	opts := DefaultTextOptions()
	opts.HasHeader = true

	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, series.Values)
}

func TestLoadTextDelimited(t *testing.T) {
	data := `t;a;b
0;1;100
1;2;200
2;3;300`

	opts := DefaultTextOptions()
	opts.Delimiter = ';'
	opts.ValueColumn = 2

	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300}, series.Values)
	assert.Equal(t, []float64{0, 1, 2}, series.Times)
}

func TestLoadTextSampleRate(t *testing.T) {
	data := `5 99
6 98
7 97
8 96`

	opts := DefaultTextOptions()
	opts.ValueColumn = 0
	opts.SampleRate = 4

	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, series.Values)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, series.Times)
}

func TestLoadTextIndexTime(t *testing.T) {
	data := "3\n1\n4\n1\n5\n"

	opts := DefaultTextOptions()
	opts.ValueColumn = 0
	opts.TimeColumn = -1

	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4, 1, 5}, series.Values)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, series.Times)
}

func TestLoadTextSkipRows(t *testing.T) {
	data := `generated by recorder v2
channel 7
0 1
1 2`

	opts := DefaultTextOptions()
	opts.SkipRows = 2

	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, series.Values)
}

func TestLoadTextDelimitedCommentWithQuote(t *testing.T) {
	data := "# recorded \"session 2\" at 512Hz\n0,1\n1,2\n2,3\n"

	opts := DefaultTextOptions()
	opts.Delimiter = ','
	series, err := LoadTextFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, series.Values)

	// The same file in whitespace mode.
	series, err = LoadTextFromReader(strings.NewReader(strings.ReplaceAll(data, ",", " ")), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, series.Values)
}

func TestLoadTextDelimitedMalformed(t *testing.T) {
	opts := DefaultTextOptions()
	opts.Delimiter = ','

	_, err := LoadTextFromReader(strings.NewReader("0,1\n1,2\n2,3\"x\n"), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadTextSkipRowsCountsLines(t *testing.T) {
	// Blank and quoted lines inside the skipped block count as lines in both modes.
	tests := []struct {
		name  string
		data  string
		delim rune
	}{
		{"whitespace", "recorder \"v2\"\n\n0 1\n1 2\n2 3\n", 0},
		{"comma", "recorder \"v2\"\n\n0,1\n1,2\n2,3\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultTextOptions()
			opts.Delimiter = tt.delim
			opts.SkipRows = 2

			series, err := LoadTextFromReader(strings.NewReader(tt.data), opts)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 2, 3}, series.Values)
		})
	}
}

func TestLoadTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts func(*TextOptions)
	}{
		{"non numeric cell", "0 1\n1 x\n2 3\n", nil},
		{"missing column", "0 1\n1\n2 3\n", nil},
		{"empty", "\n# nothing\n", nil},
		{"negative value column", "0 1\n", func(o *TextOptions) { o.ValueColumn = -1 }},
		{"negative sample rate", "0 1\n", func(o *TextOptions) { o.SampleRate = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultTextOptions()
			if tt.opts != nil {
				tt.opts(opts)
			}
			_, err := LoadTextFromReader(strings.NewReader(tt.data), opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLoadTextErrorReportsLine(t *testing.T) {
	_, err := LoadTextFromReader(strings.NewReader("0 1\n1 2\n2 oops\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestWriteTextRoundTrip(t *testing.T) {
	series, err := NewWithTimes([]float64{0.125, 0.25, 0.375}, []float64{-1.5, 0, 2.25})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, series, true))
	assert.True(t, strings.HasPrefix(buf.String(), "time value\n"))

	loaded, err := LoadTextFromReader(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, series.Times, loaded.Times)
	assert.Equal(t, series.Values, loaded.Values)
}

func TestSaveAndLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.txt")
	series := New([]float64{1, 2, 3, 4})

	require.NoError(t, SaveText(series, path, false))

	loaded, err := LoadText(path, nil)
	require.NoError(t, err)
	assert.Equal(t, series.Values, loaded.Values)

	_, err = LoadText(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = SaveText(series, filepath.Join(t.TempDir(), "missing", "signal.txt"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
