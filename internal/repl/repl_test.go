package repl

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	r := New(in, &out)
	require.NoError(t, r.Run())

	return out.String()
}

func TestREPL_EvaluatesExpressions(t *testing.T) {
	out := runSession(t, "2 + 3 * 4", "50%", "quit")

	assert.Contains(t, out, "14\n")
	assert.Contains(t, out, "0.5\n")
	assert.Contains(t, out, "Goodbye.")
}

func TestREPL_ErrorsDoNotStopTheLoop(t *testing.T) {
	out := runSession(t, "5 / 0", "2 + 2", "exit")

	assert.Contains(t, out, "Error: eval error: DivisionByZero")
	assert.Contains(t, out, "4\n")
	assert.Contains(t, out, "Goodbye.")
}

func TestREPL_BlankLinesAreSkipped(t *testing.T) {
	out := runSession(t, "", "   ", "1 + 1", "quit")

	assert.Contains(t, out, "2\n")
	assert.NotContains(t, out, "Error")
}

func TestREPL_HelpCommand(t *testing.T) {
	out := runSession(t, "help", "quit")

	// banner plus the help command itself
	assert.Equal(t, 2, strings.Count(out, "Commands: help, clear, quit, exit"))
}

func TestREPL_ClearCommand(t *testing.T) {
	out := runSession(t, "clear", "quit")

	assert.Contains(t, out, clearScreen)
}

func TestREPL_CommandsAreCaseSensitive(t *testing.T) {
	// "QUIT" is not a command, so it reaches the tokenizer and fails
	out := runSession(t, "QUIT", "quit")

	assert.Contains(t, out, "Error: syntax error")
	assert.Contains(t, out, "Goodbye.")
}

func TestREPL_EOFEndsTheLoop(t *testing.T) {
	in := strings.NewReader("1 + 1\n")
	var out bytes.Buffer

	r := New(in, &out)
	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "2\n")
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "integer", value: 14, want: "14"},
		{name: "negative integer", value: -5, want: "-5"},
		{name: "zero", value: 0, want: "0"},
		{name: "fraction", value: 0.75, want: "0.75"},
		{name: "near integer noise", value: 0.1 + 0.2 - 0.3, want: "0"},
		{name: "nan", value: math.NaN(), want: "NaN"},
		{name: "positive infinity", value: math.Inf(1), want: "+Inf"},
		{name: "negative infinity", value: math.Inf(-1), want: "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.value))
		})
	}
}
