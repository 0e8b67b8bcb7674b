// Package cmd - humanize command
package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"bytesize/core/format"
)

// humanizeCmd formats a raw byte count as display text
var humanizeCmd = &cobra.Command{
	Use:   "humanize <bytes>",
	Short: "Format a raw byte count as human-readable text",
	Long: `Render an integer byte count under a unit standard.

Examples:
  bytesize humanize 1536 --standard IEC
  bytesize humanize 1500000000 --locale comma
  bytesize humanize 1073741824 --unit MiB`,
	Args: cobra.ExactArgs(1),
	RunE: runHumanize,
}

func runHumanize(cmd *cobra.Command, args []string) error {
	std, err := activeStandard()
	if err != nil {
		return err
	}

	bytes, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("not an integer byte count: %q", args[0])
	}
	if bytes.Sign() < 0 {
		return fmt.Errorf("byte count must be non-negative")
	}

	text, ferr := format.HumanizeBig(bytes, std, activeOptions())
	if ferr != nil {
		return fail(ferr)
	}
	fmt.Println(text)
	return nil
}
