// Package cmd provides the CLI commands for bytesize.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bytesize/core/format"
	"bytesize/core/standard"
	"bytesize/internal/config"
	"bytesize/internal/logging"
)

var (
	cfgFile    string
	verbose    bool
	stdName    string
	strictBits bool
	localeName string
	precision  int32
	forcedUnit string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bytesize",
	Short: "Parse and format byte sizes and data rates",
	Long: `bytesize converts between free-form size/rate text and exact quantities.

It understands decimal SI, binary IEC and JEDEC units, bit and byte
symbols, spelled-out unit words, locale numerals and arithmetic
expressions over literals.

Examples:
  bytesize size "1.5 GB"
  bytesize size --standard IEC "(1 GiB + 512 MiB) - 256 MB"
  bytesize rate "2 GiB/5s + 50 Mbps"
  bytesize humanize 1536 --standard IEC`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bytesize.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&stdName, "standard", "s", "", "unit standard (SI, IEC, JEDEC)")
	rootCmd.PersistentFlags().BoolVar(&strictBits, "strict-bits", false, "reject fractional bit quantities")
	rootCmd.PersistentFlags().StringVar(&localeName, "locale", "", "numeral locale (plain, comma)")
	rootCmd.PersistentFlags().Int32VarP(&precision, "precision", "p", 0, "fraction digits in humanized output")
	rootCmd.PersistentFlags().StringVarP(&forcedUnit, "unit", "u", "", "force a display unit symbol")

	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(exprCmd)
	rootCmd.AddCommand(humanizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// activeStandard resolves the effective unit standard from flag or config
func activeStandard() (standard.Standard, error) {
	name := stdName
	if name == "" {
		name = config.Get().Standard
	}
	return standard.Parse(name)
}

// activeStrictBits resolves strict-bit mode from flag or config
func activeStrictBits() bool {
	return strictBits || config.Get().StrictBits
}

// activeOptions resolves the effective humanization options
func activeOptions() format.Options {
	cfg := config.Get()
	opts := format.Options{
		Precision: cfg.Output.Precision,
		ForceUnit: forcedUnit,
	}
	if precision != 0 {
		opts.Precision = precision
	}
	locale := localeName
	if locale == "" {
		locale = cfg.Output.Locale
	}
	if locale == "comma" {
		opts.Formatter = format.CommaDecimal{}
	}
	return opts
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bytesize version 0.1.0")
	},
}
