// Package cmd - size and rate commands
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bytesize/core/bigsize"
	"bytesize/core/convert"
	"bytesize/core/format"
	"bytesize/core/parse"
	"bytesize/internal/logging"
)

var (
	useBig    bool
	roundMode string
)

// sizeCmd parses a size literal or expression
var sizeCmd = &cobra.Command{
	Use:   "size <input>",
	Short: "Parse a byte-size literal or expression",
	Long: `Parse free-form size text into an exact byte count.

Examples:
  bytesize size "1.5 GB"
  bytesize size "2Gib" --strict-bits
  bytesize size "(1 GiB + 512 MiB) - 256 MB"
  bytesize size --big "1152921504606846976 GB"`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

// rateCmd parses a rate literal or expression
var rateCmd = &cobra.Command{
	Use:   "rate <input>",
	Short: "Parse a data-rate literal or expression",
	Long: `Parse free-form rate text into bytes per second.

Examples:
  bytesize rate "100 MB/s"
  bytesize rate "50 Mbps"
  bytesize rate "2 GiB/5s + 50 Mbps"`,
	Args: cobra.ExactArgs(1),
	RunE: runRate,
}

func init() {
	sizeCmd.Flags().BoolVar(&useBig, "big", false, "use exact integer arithmetic")
	sizeCmd.Flags().StringVar(&roundMode, "round", "nearest", "rounding for --big fallback (nearest, floor, ceil)")
}

func runSize(cmd *cobra.Command, args []string) error {
	input := args[0]
	std, err := activeStandard()
	if err != nil {
		return err
	}

	if useBig {
		mode, err := parseRounding(roundMode)
		if err != nil {
			return err
		}
		res, perr := bigsize.ParseRounded(input, std, activeStrictBits(), mode)
		if perr != nil {
			return fail(perr)
		}
		text, ferr := format.HumanizeBig(res.Bytes, std, activeOptions())
		if ferr != nil {
			return fail(ferr)
		}
		fmt.Printf("%s bytes (%s)\n", res.Bytes.String(), text)
		return nil
	}

	outcome := parse.TryParseSize(input, std, activeStrictBits())
	if !outcome.Success {
		return fail(outcome.Err)
	}
	logging.Debug("parsed size",
		zap.String("normalized", outcome.NormalizedInput),
		zap.String("symbol", outcome.DetectedUnitSymbol),
		zap.Bool("bit", outcome.BitInput))

	size, cerr := convert.NewByteCount(outcome.Value.Magnitude)
	if cerr != nil {
		return fail(cerr)
	}
	text, ferr := format.Humanize(size.Bytes(), std, activeOptions())
	if ferr != nil {
		return fail(ferr)
	}
	fmt.Printf("%.0f bytes (%s)\n", size.Bytes(), text)
	return nil
}

func runRate(cmd *cobra.Command, args []string) error {
	input := args[0]
	std, err := activeStandard()
	if err != nil {
		return err
	}

	outcome := parse.TryParseRate(input, std)
	if !outcome.Success {
		return fail(outcome.Err)
	}

	rate, cerr := convert.NewBitRate(outcome.Value.Magnitude)
	if cerr != nil {
		return fail(cerr)
	}
	text, ferr := format.HumanizeRate(rate.BytesPerSecond(), std, activeOptions())
	if ferr != nil {
		return fail(ferr)
	}
	fmt.Printf("%.0f bit/s (%s)\n", rate.BitsPerSecond(), text)
	return nil
}

func parseRounding(name string) (bigsize.Rounding, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return bigsize.RoundNearest, nil
	case "floor":
		return bigsize.RoundFloor, nil
	case "ceil":
		return bigsize.RoundCeil, nil
	default:
		return bigsize.RoundNearest, fmt.Errorf("unknown rounding mode: %q", name)
	}
}

// fail prints a parse error to stderr and reports it to cobra without
// re-printing usage
func fail(err error) error {
	fmt.Fprintln(os.Stderr, err.Error())
	return err
}
