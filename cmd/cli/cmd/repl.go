// Package cmd - interactive expression REPL
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"bytesize/core/format"
	"bytesize/core/parse"
	"bytesize/core/standard"
)

// replCmd evaluates expressions interactively
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate size and rate expressions interactively",
	Long: `Start an interactive loop that evaluates each line as a size
expression, falling back to a rate expression when the result is
rate-dimensioned. Ctrl-D or "exit" quits.`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	std, err := activeStandard()
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bytesize> ",
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	opts := activeOptions()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		evalLine(input, std, opts)
	}
}

// evalLine tries the input as a size first, then as a rate, and prints
// whichever succeeds
func evalLine(input string, std standard.Standard, opts format.Options) {
	sizeOutcome := parse.TryParseSize(input, std, activeStrictBits())
	if sizeOutcome.Success {
		if text, err := format.Humanize(sizeOutcome.Value.Magnitude, std, opts); err == nil {
			fmt.Printf("%.0f bytes (%s)\n", sizeOutcome.Value.Magnitude, text)
		} else {
			fmt.Printf("%.0f bytes\n", sizeOutcome.Value.Magnitude)
		}
		return
	}
	if !retryAsRate(sizeOutcome.Err) {
		fmt.Fprintln(os.Stderr, sizeOutcome.Err.Error())
		return
	}
	outcome := parse.TryParseRate(input, std)
	if !outcome.Success {
		fmt.Fprintln(os.Stderr, outcome.Err.Error())
		return
	}
	if text, err := format.HumanizeRate(outcome.Value.Magnitude, std, opts); err == nil {
		fmt.Printf("%.0f bit/s (%s)\n", outcome.Value.Magnitude*8, text)
	}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bytesize_history")
}
