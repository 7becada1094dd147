/*
Parselov runs a precompiled, data-driven grammar against an input and
prints the result.

Usage:

	parselov [flags] DATAFILE INPUTFILE

The flags are:

	--json
		Print the result as nested-tree JSON instead of GraphViz DOT.

	--dot
		Print the result as GraphViz DOT (the default).

	--parallel
		Resolve with the shared-stack-graph ParallelResolver instead of the
		default depth-first BacktrackResolver.

Exit codes: 0 on acceptance with output emitted, 1 if the input was
rejected or no parse tree could be built, 2 on a usage or data-file error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/dot"
	"github.com/corvidae/parselov/pipeline"
)

const (
	// ExitAccepted indicates the input was accepted and output was emitted.
	ExitAccepted = iota
	// ExitRejected indicates the input was rejected, or no parse tree
	// could be built from an otherwise-accepted input.
	ExitRejected
	// ExitUsageError indicates a usage problem or an invalid data file.
	ExitUsageError
)

var (
	asJSON      = pflag.Bool("json", false, "print the result as nested-tree JSON")
	asDot       = pflag.Bool("dot", false, "print the result as GraphViz DOT (default)")
	useParallel = pflag.Bool("parallel", false, "resolve with the ParallelResolver instead of BacktrackResolver")
)

var returnCode = ExitAccepted

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()
	if pflag.NArg() != 2 {
		pterm.Error.Println("usage: parselov [flags] DATAFILE INPUTFILE")
		returnCode = ExitUsageError
		return
	}
	dataFilePath, inputPath := pflag.Arg(0), pflag.Arg(1)

	df, err := loadDataFile(dataFilePath)
	if err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitUsageError
		return
	}

	input, err := os.ReadFile(inputPath)
	if err != nil {
		pterm.Error.Printfln("reading input file: %s", err.Error())
		returnCode = ExitUsageError
		return
	}

	resolver := pipeline.Backtrack
	if *useParallel {
		resolver = pipeline.Parallel
	}

	result, err := pipeline.Run(df, string(input), resolver)
	if err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitRejected
		return
	}

	if result.Ambiguous != nil {
		pterm.Warning.Printfln("%s", result.Ambiguous)
	}

	if err := emit(result); err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitUsageError
		return
	}
}

func loadDataFile(path string) (*datafile.DataFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return datafile.Load(f)
}

// emit writes the chosen output format to stdout. --json wins if both
// flags are given; otherwise DOT, the default per the usage comment above.
func emit(result pipeline.Result) error {
	if *asJSON {
		return result.Tree.WriteJSON(os.Stdout)
	}
	return dot.Write(os.Stdout, result.Stream)
}
