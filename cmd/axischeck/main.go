package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeusync/physunits/internal/analysis/axischeck"
)

func main() {
	tests := flag.Bool("tests", false, "also check test files")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: axischeck [-tests] [packages]")
		flag.PrintDefaults()
	}
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	findings, err := axischeck.Run(axischeck.Config{Tests: *tests}, patterns...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "axischeck:", err)
		os.Exit(2)
	}
	for _, f := range findings {
		fmt.Println(f)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
}
