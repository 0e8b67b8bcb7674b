// Package cmd - expression command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bytesize/core/format"
	"bytesize/core/parse"
	"bytesize/internal/errors"
)

// exprCmd evaluates an arithmetic expression over size, duration and
// rate literals, reporting whichever dimension the result carries
var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Evaluate a size or rate expression",
	Long: `Evaluate arithmetic over size, duration and rate literals.

The result must come out as a byte size or a data rate; which one is
detected from the expression itself.

Examples:
  bytesize expr "(1 GiB + 512 MiB) - 256 MB"
  bytesize expr "2 * 1 GB"
  bytesize expr "2 GiB/5s + 50 Mbps"`,
	Args: cobra.ExactArgs(1),
	RunE: runExpr,
}

// retryAsRate reports whether a failed size parse should be retried as
// a rate. A dimension mismatch means the expression evaluated to
// something rate-shaped; a malformed literal covers lone rate literals
// like "1 MB/s", which the size pass tokenizes into a division by "s"
// and rejects before the rate parser ever sees them. Any other failure
// would repeat identically on the rate side.
func retryAsRate(err *errors.Error) bool {
	return err.Is(errors.TypeDimensionMismatch) || err.Is(errors.TypeMalformedLiteral)
}

func runExpr(cmd *cobra.Command, args []string) error {
	input := args[0]
	std, err := activeStandard()
	if err != nil {
		return err
	}
	opts := activeOptions()

	sizeOutcome := parse.TryParseSize(input, std, activeStrictBits())
	if sizeOutcome.Success {
		text, ferr := format.Humanize(sizeOutcome.Value.Magnitude, std, opts)
		if ferr != nil {
			return fail(ferr)
		}
		fmt.Printf("%.0f bytes (%s)\n", sizeOutcome.Value.Magnitude, text)
		return nil
	}
	if !retryAsRate(sizeOutcome.Err) {
		return fail(sizeOutcome.Err)
	}

	outcome := parse.TryParseRate(input, std)
	if !outcome.Success {
		return fail(outcome.Err)
	}
	text, ferr := format.HumanizeRate(outcome.Value.Magnitude, std, opts)
	if ferr != nil {
		return fail(ferr)
	}
	fmt.Printf("%.0f bit/s (%s)\n", outcome.Value.Magnitude*8, text)
	return nil
}
