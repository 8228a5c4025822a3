package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/rivercross/river"
)

// Default head counts when no arguments are given.
const (
	defaultMissionaries = 3
	defaultCannibals    = 3
)

// parseCounts turns 0, 1, or 2 positional arguments into the initial
// state. No arguments means the classic 3/3 instance. A single argument
// sets the missionary count and leaves cannibals at zero, preserving
// the historical fall-through default. With two arguments the cannibal
// count is parsed and validated first, so `rivercross -1 -1` reports
// the cannibal error.
// Validation failures print their message to out and return
// errInvalidInput.
func parseCounts(out io.Writer, args []string) (river.State, error) {
	if len(args) == 0 {
		return river.Start(defaultMissionaries, defaultCannibals)
	}

	missionaries, cannibals := 0, 0
	if len(args) == 2 {
		n, err := parseCount(out, "cannibal", args[1])
		if err != nil {
			return river.State{}, err
		}
		cannibals = n
	}
	n, err := parseCount(out, "missionary", args[0])
	if err != nil {
		return river.State{}, err
	}
	missionaries = n

	return river.Start(missionaries, cannibals)
}

// parseCount parses a single count, rejecting non-integers and
// negatives with a printed message.
func parseCount(out io.Writer, label, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(out, "Invalid %s count %q: not an integer.\n", label, arg)
		return 0, errInvalidInput
	}
	if n < 0 {
		if label == "cannibal" {
			fmt.Fprintln(out, "Cannibal count cannot be negative.")
		} else {
			fmt.Fprintln(out, "Missionary count cannot be negative.")
		}

		return 0, errInvalidInput
	}

	return n, nil
}
