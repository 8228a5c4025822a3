package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and captures its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args, which holds the
		// test binary's own -test.* flags.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func TestRun_DefaultInstance(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Current State: ")
	assert.Contains(t, out, "Missionaries on the left: 3")
	assert.True(t, strings.HasSuffix(out, "Solution found!\n"))
}

func TestRun_Quiet(t *testing.T) {
	out, err := execute(t, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "Solution found!\n", out)
}

// TestRun_SingleArg preserves the fall-through default: one argument
// sets missionaries only, cannibals stay at zero.
func TestRun_SingleArg(t *testing.T) {
	out, err := execute(t, "4", "-q")
	require.NoError(t, err)
	assert.Equal(t, "Solution found!\n", out)
}

func TestRun_NoSolution(t *testing.T) {
	out, err := execute(t, "2", "3", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "No solution exists.\n", out)
}

func TestRun_NegativeMissionaries(t *testing.T) {
	out, err := execute(t, "-1")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, "Missionary count cannot be negative.\n", out)
}

func TestRun_NegativeCannibals(t *testing.T) {
	out, err := execute(t, "3", "-2")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, "Cannibal count cannot be negative.\n", out)
}

// TestRun_BothNegative: the cannibal count is validated first when two
// arguments are given, so only its message appears.
func TestRun_BothNegative(t *testing.T) {
	out, err := execute(t, "-1", "-1")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, "Cannibal count cannot be negative.\n", out)
}

func TestRun_NonInteger(t *testing.T) {
	out, err := execute(t, "three")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, `Invalid missionary count "three": not an integer.`+"\n", out)
}

func TestRun_TooManyArgs(t *testing.T) {
	out, err := execute(t, "3", "3", "3")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Contains(t, out, "at most two counts")
}

func TestRun_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "rivercross [missionaries] [cannibals]")
}

// TestRun_TraceLayout pins the full output of the empty puzzle: one
// five-line labeled block for the lone expanded state, then the verdict.
func TestRun_TraceLayout(t *testing.T) {
	out, err := execute(t, "0", "0")
	require.NoError(t, err)

	want := "Current State: \n" +
		"\tMissionaries on the left: 0\n" +
		"\tCannibals on the left: 0\n" +
		"\tMissionaries on the right: 0\n" +
		"\tCannibals on the right: 0\n" +
		"\tBoat on the left: true\n" +
		"No solution exists.\n"
	assert.Equal(t, want, out)
}
