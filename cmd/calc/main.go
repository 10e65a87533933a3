package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/mathline/internal/eval"
	"github.com/DjordjeVuckovic/mathline/internal/repl"
	"github.com/DjordjeVuckovic/mathline/internal/suite"
)

func main() {
	suitePath := flag.String("suite", "", "run a yaml regression suite instead of the interactive loop")
	flag.Parse()

	if *suitePath != "" {
		os.Exit(runSuite(*suitePath))
	}

	r := repl.New(os.Stdin, os.Stdout)
	if err := r.Run(); err != nil {
		slog.Error("Input error", "error", err)
		os.Exit(1)
	}
}

func runSuite(path string) int {
	s, err := suite.LoadFromFile(path)
	if err != nil {
		slog.Error("Failed to load suite", "path", path, "error", err)
		return 1
	}

	report := suite.Run(s, eval.NewEvaluator())
	for _, r := range report.Results {
		if r.Pass {
			fmt.Printf("ok   %s\n", r.ID)
		} else {
			fmt.Printf("FAIL %s: %s\n", r.ID, r.Detail)
		}
	}
	fmt.Printf("%s: %d cases, %d failed (run %s)\n", report.Suite, len(report.Results), report.Failed, report.RunID)

	if report.Failed > 0 {
		return 1
	}
	return 0
}
