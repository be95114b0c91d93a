// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Input/output
	inputFile  = flag.String("f", "", "Path to the input .trl file (positional arguments are also accepted)")
	outputFile = flag.String("o", "", "Path to the output .pgn file (default: input path with .pgn extension; single input only)")

	// Header values
	eventName = flag.String("e", "", "Name of the event (default: input file base name)")
	whiteName = flag.String("w", "", "Name of the white player")
	blackName = flag.String("b", "", "Name of the black player")

	// Configuration and diagnostics
	configFile = flag.String("config", "", "Optional YAML configuration file")
	logFile    = flag.String("log", "", "Write diagnostics to this file instead of stderr")
	quiet      = flag.Bool("q", false, "Suppress diagnostics and progress output")

	// Parallelism across input files
	numWorkers = flag.Int("j", 0, "Number of parallel file conversions (default: number of CPUs)")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show usage")
)
