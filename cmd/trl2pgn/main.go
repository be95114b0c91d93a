// trl2pgn converts Ludii trial (.trl) game traces to PGN, for orthodox
// chess and Kriegspiel.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lgbarn/trl2pgn/internal/config"
	"github.com/lgbarn/trl2pgn/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("trl2pgn version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	inputs := gatherInputs()
	if len(inputs) == 0 {
		usage()
		os.Exit(1)
	}

	logW := setupLogFile()
	outPath := *outputFile
	if len(inputs) > 1 && outPath != "" {
		fmt.Fprintln(os.Stderr, "Warning: -o is ignored when converting multiple files")
		outPath = ""
	}

	proc := NewProcessor(cfg, outPath)
	failures := runConversions(proc, inputs, cfg, logW)
	if failures > 0 {
		os.Exit(1)
	}
}

// applyFlags overrides loaded configuration with command-line values.
func applyFlags(cfg *config.Config) {
	if *eventName != "" {
		cfg.Event = *eventName
	}
	if *whiteName != "" {
		cfg.White = *whiteName
	}
	if *blackName != "" {
		cfg.Black = *blackName
	}
	if *numWorkers > 0 {
		cfg.Workers = *numWorkers
	}
	if *quiet {
		verbosity := 0
		cfg.Verbosity = &verbosity
	}
}

// gatherInputs combines the -f flag and positional arguments.
func gatherInputs() []string {
	var inputs []string
	if *inputFile != "" {
		inputs = append(inputs, *inputFile)
	}
	inputs = append(inputs, flag.Args()...)
	return inputs
}

// setupLogFile opens the diagnostics destination, defaulting to stderr.
func setupLogFile() io.Writer {
	if *logFile == "" {
		return os.Stderr
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return file
}

// runConversions converts every input, fanning out over the worker pool
// when more than one file is given. Results are reported in input order.
// It returns the number of failed conversions.
func runConversions(proc *Processor, inputs []string, cfg *config.Config, logW io.Writer) int {
	if len(inputs) == 1 {
		res := proc.ConvertFile(worker.Job{Path: inputs[0]})
		reportResult(res, logW, cfg.VerbosityLevel())
		if res.Err != nil {
			return 1
		}
		return 0
	}

	workers := cfg.Workers
	if workers > len(inputs) {
		workers = len(inputs)
	}
	pool := worker.NewPool(workers, len(inputs), proc.ConvertFile)
	pool.Start()
	go func() {
		for i, path := range inputs {
			pool.Submit(worker.Job{Path: path, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(inputs))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Job.Index < results[j].Job.Index })

	failures := 0
	for _, res := range results {
		reportResult(res, logW, cfg.VerbosityLevel())
		if res.Err != nil {
			failures++
		}
	}
	return failures
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: trl2pgn [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Convert Ludii trial files to PGN (orthodox chess and Kriegspiel).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
