// Command rivercross solves the missionaries-and-cannibals puzzle for
// the given head counts, printing every state the search expands and a
// final verdict.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/solve"
)

// errInvalidInput marks input failures whose message was already
// printed; main turns it into exit status 1 without further output.
var errInvalidInput = errors.New("invalid input")

// newRootCmd builds the base Cobra command for the rivercross CLI.
// Flag parsing is manual (DisableFlagParsing): pflag would reject a
// negative count like "-1" as an unknown shorthand flag, and negative
// counts must reach the validator to produce their specific message.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rivercross [missionaries] [cannibals]",
		Short: "Solve the missionaries-and-cannibals river crossing",
		Long: `rivercross runs an exhaustive breadth-first search over the classic
river-crossing puzzle: move every missionary and cannibal from the left
bank to the right with a two-seat boat, never leaving missionaries
outnumbered by cannibals on either bank.

With no arguments the classic 3/3 instance is solved. With a single
argument the cannibal count stays at zero. Every state the search
expands is printed unless --quiet is given.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// run separates flags from positional counts, validates them, launches
// the search, and prints the verdict.
func run(cmd *cobra.Command, raw []string) error {
	out := cmd.OutOrStdout()

	var args []string
	quiet := false
	for _, a := range raw {
		switch a {
		case "--quiet", "-q":
			quiet = true
		case "--help", "-h":
			return cmd.Help()
		default:
			args = append(args, a)
		}
	}
	if len(args) > 2 {
		fmt.Fprintln(out, "Expected at most two counts: [missionaries] [cannibals].")
		return errInvalidInput
	}

	start, err := parseCounts(out, args)
	if err != nil {
		return err
	}

	opts := []solve.Option{solve.WithContext(cmd.Context())}
	if !quiet {
		opts = append(opts, solve.WithTrace(out))
	}
	res, err := solve.Solve(start, opts...)
	if err != nil {
		return err
	}

	if res.Found {
		fmt.Fprintln(out, "Solution found!")
	} else {
		fmt.Fprintln(out, "No solution exists.")
	}

	return nil
}
