package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/mathline/internal/eval"
)

const (
	prompt      = "> "
	clearScreen = "\x1b[2J\x1b[1;1H"
)

const helpText = `mathline calculator
Type expressions, e.g.: 2 + 3 * (4 - 1) ^ 2
Operators: + - * / ^ % (percent converts a number to a fraction, e.g. 50% -> 0.5)
Commands: help, clear, quit, exit`

// REPL reads expression lines, evaluates them, and prints results until
// quit/exit or end of input. It holds no state between lines beyond the
// reader and writer.
type REPL struct {
	in        io.Reader
	out       io.Writer
	evaluator *eval.Evaluator
}

func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		in:        in,
		out:       out,
		evaluator: eval.NewEvaluator(),
	}
}

// Run loops until a quit command or EOF. Evaluation errors are printed
// and the loop continues; they are never fatal.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, helpText)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := scanner.Text()

		// commands are exact, case-sensitive matches
		switch line {
		case "quit", "exit":
			fmt.Fprintln(r.out, "Goodbye.")
			return nil
		case "help":
			fmt.Fprintln(r.out, helpText)
			continue
		case "clear":
			fmt.Fprint(r.out, clearScreen)
			continue
		}

		res, err := r.evaluator.Evaluate(line)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %s\n", err)
			continue
		}
		if res.Empty {
			continue
		}
		fmt.Fprintln(r.out, FormatResult(res.Value))
	}
}
