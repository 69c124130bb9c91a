package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/render"
	"github.com/sartorproj/godfa/timeseries"
)

// Default values for configuration.
const (
	DefaultPrecision = 5
	MaxPrecision     = 17
)

// Output formats.
const (
	TextOut = "text"
	CSVOut  = "csv"
	JSONOut = "json"
	YAMLOut = "yaml"
)

// ColorAuto colors labels only when stdout is a terminal.
const ColorAuto = "auto"

// Synthetic signal kinds.
const (
	WhiteSignal = "white"
	AR1Signal   = "ar1"
	WalkSignal  = "walk"
	FGNSignal   = "fgn"
)

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
type ConfigRawInput struct {
	Input string `mapstructure:"-"`

	LogLevel   string `mapstructure:"log-level"`
	LogJSON    bool   `mapstructure:"log-json"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Color      string `mapstructure:"color"`

	TimeColumn  int     `mapstructure:"time-column"`
	ValueColumn int     `mapstructure:"value-column"`
	SampleRate  float64 `mapstructure:"sample-rate"`
	Delimiter   string  `mapstructure:"delimiter"`
	Header      bool    `mapstructure:"header"`
	SkipRows    int     `mapstructure:"skip-rows"`
	Comment     string  `mapstructure:"comment"`
	Name        string  `mapstructure:"name"`

	PlotSeries     bool   `mapstructure:"plot-series"`
	PlotIntegrated bool   `mapstructure:"plot-integrated"`
	PlotEpochs     bool   `mapstructure:"plot-epochs"`
	PlotLogLog     bool   `mapstructure:"plot-loglog"`
	SavePath       string `mapstructure:"save-path"`

	// fluct
	WindowSize int `mapstructure:"window-size"`

	// sweep
	Initial int    `mapstructure:"initial"`
	Points  int    `mapstructure:"points"`
	Spacing string `mapstructure:"spacing"`

	// synth
	Signal  string  `mapstructure:"signal"`
	Length  int     `mapstructure:"length"`
	Phi     float64 `mapstructure:"phi"`
	Hurst   float64 `mapstructure:"hurst"`
	Seed    uint64  `mapstructure:"seed"`
	Analyze bool    `mapstructure:"analyze"`
}

// SynthConfig selects a synthetic signal.
type SynthConfig struct {
	Signal string
	Length int
	Phi    float64
	Hurst  float64
	Seed   uint64

	// Analyze sweeps the generated signal instead of writing its samples.
	Analyze bool
}

// Config holds the validated runtime configuration.
type Config struct {
	Input string
	Name  string
	Text  *timeseries.TextOptions

	WindowSize int
	Sweep      dfa.SweepConfig
	Synth      SynthConfig

	Plots    render.Options
	SavePath string

	Output     string
	OutputFile string
	Precision  int
	Color      bool
	LogLevel   zerolog.Level
	LogJSON    bool
}

// ProcessAndValidate turns the raw input into cfg, rejecting invalid values.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	var err error

	if cfg.LogLevel, err = parseLogLevel(input.LogLevel); err != nil {
		return err
	}
	cfg.LogJSON = input.LogJSON

	if err := validateOutput(cfg, input); err != nil {
		return err
	}
	if err := processTextOptions(cfg, input); err != nil {
		return err
	}
	if err := processSweep(cfg, input); err != nil {
		return err
	}
	if err := processSynth(cfg, input); err != nil {
		return err
	}
	return processPlots(cfg, input)
}

func validateOutput(cfg *Config, input *ConfigRawInput) error {
	output := strings.ToLower(strings.TrimSpace(input.Output))
	switch output {
	case "":
		output = TextOut
	case TextOut, CSVOut, JSONOut, YAMLOut:
	default:
		return fmt.Errorf("invalid output format %q: must be text, csv, json or yaml", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	}
	cfg.Precision = input.Precision

	colors, err := parseColor(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	// Files never carry escape codes.
	cfg.Color = colors && cfg.OutputFile == ""
	return nil
}

func processTextOptions(cfg *Config, input *ConfigRawInput) error {
	if input.ValueColumn < 0 {
		return fmt.Errorf("value column must be >= 0, got %d", input.ValueColumn)
	}
	if input.SampleRate < 0 {
		return fmt.Errorf("sample rate must be >= 0, got %g", input.SampleRate)
	}
	if input.SkipRows < 0 {
		return fmt.Errorf("skip rows must be >= 0, got %d", input.SkipRows)
	}
	if input.TimeColumn >= 0 && input.TimeColumn == input.ValueColumn && input.SampleRate == 0 {
		return fmt.Errorf("time and value columns must differ, both are %d", input.ValueColumn)
	}

	delim, err := parseDelimiter(input.Delimiter)
	if err != nil {
		return err
	}

	cfg.Input = input.Input
	cfg.Text = &timeseries.TextOptions{
		TimeColumn:    input.TimeColumn,
		ValueColumn:   input.ValueColumn,
		Delimiter:     delim,
		HasHeader:     input.Header,
		SkipRows:      input.SkipRows,
		CommentPrefix: input.Comment,
		SampleRate:    input.SampleRate,
	}

	cfg.Name = input.Name
	if cfg.Name == "" && input.Input != "" {
		base := filepath.Base(input.Input)
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return nil
}

func processSweep(cfg *Config, input *ConfigRawInput) error {
	spacing, err := dfa.ParseSpacing(input.Spacing)
	if err != nil {
		return err
	}
	if input.Initial < dfa.MinWindowSize {
		return fmt.Errorf("initial window size must be >= %d, got %d", dfa.MinWindowSize, input.Initial)
	}
	if input.Points < 1 {
		return fmt.Errorf("points must be >= 1, got %d", input.Points)
	}
	if input.WindowSize < 0 {
		return fmt.Errorf("window size must be >= 0, got %d", input.WindowSize)
	}

	cfg.WindowSize = input.WindowSize
	cfg.Sweep = dfa.SweepConfig{
		InitialWindowSize: input.Initial,
		PointCount:        input.Points,
		Spacing:           spacing,
	}
	return nil
}

func processSynth(cfg *Config, input *ConfigRawInput) error {
	signal := strings.ToLower(strings.TrimSpace(input.Signal))
	switch signal {
	case "":
		signal = WhiteSignal
	case WhiteSignal, AR1Signal, WalkSignal, FGNSignal:
	default:
		return fmt.Errorf("invalid signal %q: must be white, ar1, walk or fgn", input.Signal)
	}
	if input.Length < 0 {
		return fmt.Errorf("length must be >= 0, got %d", input.Length)
	}

	cfg.Synth = SynthConfig{
		Signal:  signal,
		Length:  input.Length,
		Phi:     input.Phi,
		Hurst:   input.Hurst,
		Seed:    input.Seed,
		Analyze: input.Analyze,
	}
	return nil
}

func processPlots(cfg *Config, input *ConfigRawInput) error {
	cfg.Plots = render.Options{
		TimeSeries: input.PlotSeries,
		Integrated: input.PlotIntegrated,
		Epochs:     input.PlotEpochs,
		LogLog:     input.PlotLogLog,
	}
	cfg.SavePath = input.SavePath

	if cfg.Plots.Enabled() && cfg.SavePath == "" {
		return errors.New("plots are written to files: set --save-path")
	}
	return nil
}

// parseDelimiter maps "" to any whitespace, "tab" or `\t` to a tab, and
// otherwise expects a single character.
func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "space", "whitespace":
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// parseColor resolves "auto" (or empty) with the terminal detection of
// fatih/color and anything else as a boolean.
func parseColor(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ColorAuto:
		return !color.NoColor, nil
	}
	return parseBool(s)
}

// parseBool accepts yes/no alongside the strconv forms.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
