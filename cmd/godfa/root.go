package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by the linker at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg holds the validated, final configuration.
var cfg = &Config{}

// input holds the raw configuration merged by viper from defaults, file, env and flags.
var input = &ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "godfa",
	Short: "Detrended fluctuation analysis of time series.",
	Long: `godfa measures long-range correlation in a time series with detrended
fluctuation analysis (DFA). It reports the fluctuation F at a single window size,
or sweeps window sizes and fits the scaling exponent alpha of F(n) ~ n^alpha.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(fluctCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file")
	flags.String("log-level", defaultLogLevel, "Log level: debug or info or warn or error")
	flags.Bool("log-json", false, "Log as JSON instead of console text")
	flags.String("output", TextOut, "Output format: text or csv or json or yaml")
	flags.String("output-file", "", "Optional path to write output to")
	flags.Int("precision", DefaultPrecision, "Decimal precision for numeric columns")
	flags.String("color", ColorAuto, "Colored labels in text output: auto (terminal only), yes or no")

	flags.Int("time-column", 0, "Zero-based column holding time (-1 = use sample index)")
	flags.Int("value-column", 1, "Zero-based column holding the amplitude")
	flags.Float64("sample-rate", 0, "Sampling rate in Hz; when set, time is (i+1)/rate and the time column is ignored")
	flags.String("delimiter", "", "Column delimiter: a single character, tab, or empty for any whitespace")
	flags.Bool("header", false, "First data row is a header")
	flags.Int("skip-rows", 0, "Number of leading lines to skip")
	flags.String("comment", "#", "Prefix marking comment lines")
	flags.String("name", "", "Name used in plot titles and file names (default: input file name)")

	flags.Bool("plot-series", false, "Plot the time series")
	flags.Bool("plot-integrated", false, "Plot the integrated time series")
	flags.Bool("plot-epochs", false, "Plot the windows and local trends of every window size")
	flags.Bool("plot-loglog", false, "Plot the log-log sweep and fitted line")
	flags.String("save-path", "", "Directory for plots and sweep data")
	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("binding root flags: %v", err))
	}

	fluctCmd.Flags().IntP("window-size", "w", 0, "Window size in samples")
	if err := viper.BindPFlags(fluctCmd.Flags()); err != nil {
		panic(fmt.Sprintf("binding fluct flags: %v", err))
	}

	sweepCmd.Flags().Int("initial", 10, "Initial window size, must be below N/4")
	sweepCmd.Flags().Int("points", 45, "Number of window sizes between the initial size and N/4")
	sweepCmd.Flags().String("spacing", "log", "Window size spacing: log or linear")
	if err := viper.BindPFlags(sweepCmd.Flags()); err != nil {
		panic(fmt.Sprintf("binding sweep flags: %v", err))
	}

	synthCmd.Flags().String("signal", "white", "Signal: white or ar1 or walk or fgn")
	synthCmd.Flags().Int("length", 4096, "Number of samples")
	synthCmd.Flags().Float64("phi", 0.7, "AR(1) coefficient")
	synthCmd.Flags().Float64("hurst", 0.7, "Hurst exponent of fractional Gaussian noise")
	synthCmd.Flags().Uint64("seed", 1, "Random seed")
	synthCmd.Flags().Bool("analyze", false, "Sweep the generated signal and print the report instead of the samples")
	if err := viper.BindPFlags(synthCmd.Flags()); err != nil {
		panic(fmt.Sprintf("binding synth flags: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".godfa")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("GODFA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output", TextOut)
	viper.SetDefault("precision", DefaultPrecision)
	viper.SetDefault("log-level", defaultLogLevel)
	viper.SetDefault("color", ColorAuto)
	viper.SetDefault("comment", "#")
	viper.SetDefault("value-column", 1)
	viper.SetDefault("initial", 10)
	viper.SetDefault("points", 45)
	viper.SetDefault("spacing", "log")
}

// sharedSetup merges configuration sources and validates them into cfg.
func sharedSetup(_ *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	input.Input = ""
	if len(args) == 1 {
		input.Input = args[0]
	}

	if err := ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, cfg.LogJSON)
	return nil
}
