package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/godfa/dfa"
)

// nopCloser keeps stdout open when it stands in for an output file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// selectOutputFile opens path for writing, or returns stdout when path is empty.
func selectOutputFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}
	return f, nil
}

// emit writes a report to the configured output, choosing the encoder by format.
func emit(cfg *Config, table func(io.Writer) error, csvRows func() [][]string, v any) (err error) {
	out, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %v", dfa.ErrIOFailure, cerr)
		}
	}()

	switch cfg.Output {
	case JSONOut:
		err = writeJSON(out, v)
	case YAMLOut:
		err = writeYAML(out, v)
	case CSVOut:
		err = writeCSV(out, csvRows())
	default:
		err = table(out)
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
	}

	if cfg.OutputFile != "" {
		log.Info().Str("format", cfg.Output).Str("file", cfg.OutputFile).Msg("wrote results")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func formatter(precision int) func(float64) string {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

// printFluctuation writes the result of the fluct command.
func printFluctuation(cfg *Config, r FluctuationReport) error {
	fmtFloat := formatter(cfg.Precision)
	header := []string{"name", "samples", "window_size", "windows", "dropped", "f"}
	row := []string{r.Name, strconv.Itoa(r.Samples), strconv.Itoa(r.WindowSize), strconv.Itoa(r.Windows), strconv.Itoa(r.Dropped), fmtFloat(r.F)}

	table := func(w io.Writer) error {
		t := tablewriter.NewWriter(w)
		t.Header([]string{"Name", "Samples", "Window", "Windows", "Dropped", "F"})
		t.Configure(func(c *tablewriter.Config) {
			c.Row.Alignment.Global = tw.AlignRight
		})
		if err := t.Append(row); err != nil {
			return err
		}
		return t.Render()
	}
	return emit(cfg, table, func() [][]string { return [][]string{header, row} }, r)
}

// printSweep writes the result of the sweep command.
func printSweep(cfg *Config, r SweepReport) error {
	fmtFloat := formatter(cfg.Precision)
	logF := func(p SweepPointReport) string {
		if p.LogF == nil {
			return "-"
		}
		return fmtFloat(*p.LogF)
	}

	table := func(w io.Writer) error {
		t := tablewriter.NewWriter(w)
		t.Header([]string{"Window", "F", "log10 n", "log10 F", "Fitted"})
		t.Configure(func(c *tablewriter.Config) {
			c.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, p := range r.Points {
			data = append(data, []string{
				strconv.Itoa(p.WindowSize),
				fmtFloat(p.F),
				fmtFloat(p.LogWindowSize),
				logF(p),
				strconv.FormatBool(p.Fitted),
			})
		}
		if err := t.Bulk(data); err != nil {
			return err
		}
		if err := t.Render(); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, "%s: alpha = %s (intercept %s, r² %s, %d/%d points) %s\n",
			r.Name, fmtFloat(r.Alpha), fmtFloat(r.Intercept), fmtFloat(r.RSquared),
			countFitted(r.Points), len(r.Points), regimeLabel(cfg.Color, r.Regime))
		return err
	}

	rows := func() [][]string {
		out := [][]string{{"name", "window_size", "f", "log_window_size", "log_f", "fitted", "alpha", "intercept", "r_squared", "regime"}}
		for _, p := range r.Points {
			out = append(out, []string{
				r.Name,
				strconv.Itoa(p.WindowSize),
				fmtFloat(p.F),
				fmtFloat(p.LogWindowSize),
				logF(p),
				strconv.FormatBool(p.Fitted),
				fmtFloat(r.Alpha),
				fmtFloat(r.Intercept),
				fmtFloat(r.RSquared),
				r.Regime,
			})
		}
		return out
	}
	return emit(cfg, table, rows, r)
}

func countFitted(points []SweepPointReport) int {
	n := 0
	for _, p := range points {
		if p.Fitted {
			n++
		}
	}
	return n
}

// regimeLabel colors the regime name for terminal output. fatih/color still
// drops the escapes when stdout is not a terminal.
func regimeLabel(enabled bool, regime string) string {
	if !enabled {
		return "[" + regime + "]"
	}

	var c *color.Color
	switch regime {
	case dfa.Uncorrelated.String():
		c = color.New(color.FgGreen)
	case dfa.Persistent.String(), dfa.PinkNoise.String():
		c = color.New(color.FgYellow)
	case dfa.AntiPersistent.String():
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgRed)
	}
	return c.Sprint("[" + regime + "]")
}
