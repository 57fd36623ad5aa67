// Command opendta runs the full load -> UE -> simulation -> output
// pipeline over a single directory of input files.
//
// Zero args reads and writes the current directory, one arg uses that
// directory for both input and output, and two args split input from
// output.
package main

import (
	"fmt"
	"os"

	"opendta/orchestrator"
)

func main() {
	inputDir, outputDir, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := orchestrator.RunAll(inputDir, outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "opendta: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (inputDir, outputDir string, err error) {
	switch len(args) {
	case 0:
		return "./", "./", nil
	case 1:
		return args[0], args[0], nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("usage: opendta [input_dir [output_dir]]")
	}
}
