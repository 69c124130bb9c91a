package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TextOptions holds options for loading delimited numeric text files.
type TextOptions struct {
	TimeColumn    int     // Column index for time; negative uses the sample index
	ValueColumn   int     // Column index for amplitude (default: 1)
	Delimiter     rune    // Field delimiter; 0 splits on any run of whitespace
	HasHeader     bool    // Whether the first data row is a header
	SkipRows      int     // Number of rows to skip at start
	CommentPrefix string  // Lines starting with this prefix are ignored (default: "#")
	SampleRate    float64 // When > 0, time is (i+1)/SampleRate and TimeColumn is ignored
}

// DefaultTextOptions returns default options: whitespace separated, time in
// column 0 and amplitude in column 1.
func DefaultTextOptions() *TextOptions {
	return &TextOptions{
		TimeColumn:    0,
		ValueColumn:   1,
		CommentPrefix: "#",
	}
}

// LoadText loads a time series from a delimited text file.
func LoadText(filename string, opts *TextOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadTextFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return series, nil
}

// record is one data row and the 1-based line it came from.
type record struct {
	line   int
	fields []string
}

// LoadTextFromReader loads a time series from an io.Reader.
//
// A first row that does not parse as numbers is treated as a header even when
// HasHeader is false. Any later non-numeric cell in a selected column is an error.
func LoadTextFromReader(r io.Reader, opts *TextOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultTextOptions()
	}
	if opts.ValueColumn < 0 {
		return nil, fmt.Errorf("%w: value column must be >= 0, got %d", ErrInvalidInput, opts.ValueColumn)
	}
	if opts.SampleRate < 0 {
		return nil, fmt.Errorf("%w: sample rate must be >= 0, got %g", ErrInvalidInput, opts.SampleRate)
	}

	records, err := readRecords(r, opts)
	if err != nil {
		return nil, err
	}

	useTimeColumn := opts.SampleRate == 0 && opts.TimeColumn >= 0

	var times, values []float64
	for i, rec := range records {
		if i == 0 && opts.HasHeader {
			continue
		}

		val, tm, err := parseRecord(rec, opts, useTimeColumn)
		if err != nil {
			// Tolerate an undeclared header row.
			if i == 0 {
				continue
			}
			return nil, err
		}

		values = append(values, val)
		if useTimeColumn {
			times = append(times, tm)
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no valid data found", ErrInvalidInput)
	}

	switch {
	case opts.SampleRate > 0:
		times = make([]float64, len(values))
		for i := range times {
			times[i] = float64(i+1) / opts.SampleRate
		}
	case !useTimeColumn:
		return New(values), nil
	}

	return NewWithTimes(times, values)
}

// readRecords splits the input into rows of fields, dropping skipped lines,
// blank lines and comments before any field is tokenized.
func readRecords(r io.Reader, opts *TextOptions) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if line <= opts.SkipRows {
			continue
		}
		raw := scanner.Text()
		text := strings.TrimSpace(raw)
		if text == "" || isComment(text, opts.CommentPrefix) {
			continue
		}
		fields, err := splitFields(raw, opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidInput, line, err)
		}
		records = append(records, record{line: line, fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// splitFields splits one line on runs of whitespace, or as a single CSV record
// when a delimiter is set.
func splitFields(line string, delim rune) ([]string, error) {
	if delim == 0 {
		return strings.Fields(line), nil
	}

	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	fields, err := reader.Read()
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return nil, fmt.Errorf("column %d: %w", perr.Column, perr.Err)
	}
	return fields, err
}

func isComment(text, prefix string) bool {
	return prefix != "" && strings.HasPrefix(text, prefix)
}

func parseRecord(rec record, opts *TextOptions, useTimeColumn bool) (value, tm float64, err error) {
	value, err = parseField(rec, opts.ValueColumn)
	if err != nil {
		return 0, 0, err
	}
	if useTimeColumn {
		tm, err = parseField(rec, opts.TimeColumn)
		if err != nil {
			return 0, 0, err
		}
	}
	return value, tm, nil
}

func parseField(rec record, col int) (float64, error) {
	if col >= len(rec.fields) {
		return 0, fmt.Errorf("%w: line %d has %d columns, need column %d", ErrInvalidInput, rec.line, len(rec.fields), col)
	}
	raw := strings.TrimSpace(strings.Trim(rec.fields[col], "\""))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d column %d: %q is not a number", ErrInvalidInput, rec.line, col, raw)
	}
	return v, nil
}

// WriteText writes the series as two whitespace separated columns (time, value).
func WriteText(w io.Writer, series *Series, header bool) error {
	writer := bufio.NewWriter(w)

	if header {
		if _, err := writer.WriteString("time value\n"); err != nil {
			return err
		}
	}

	for i, v := range series.Values {
		t := float64(i)
		if i < len(series.Times) {
			t = series.Times[i]
		}
		writer.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
		writer.WriteString(" ")
		writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}

// SaveText saves a time series to a text file.
func SaveText(series *Series, filename string, header bool) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteText(file, series, header)
}
