// processor.go - Per-file conversion glue around the convert package
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/trl2pgn/internal/config"
	"github.com/lgbarn/trl2pgn/internal/convert"
	"github.com/lgbarn/trl2pgn/internal/diag"
	"github.com/lgbarn/trl2pgn/internal/errors"
	"github.com/lgbarn/trl2pgn/internal/output"
	"github.com/lgbarn/trl2pgn/internal/worker"
)

// unknownDate is the Date tag sentinel when the file date is unavailable.
const unknownDate = "????.??.??"

// Processor converts trial files to PGN files using shared defaults.
type Processor struct {
	cfg *config.Config

	// outPath overrides the derived output path; only honoured when a
	// single input file is converted.
	outPath string
}

// NewProcessor creates a processor with the given defaults.
func NewProcessor(cfg *config.Config, outPath string) *Processor {
	return &Processor{cfg: cfg, outPath: outPath}
}

// ConvertFile reads one trial file, converts it and writes the PGN next to
// it (or to the override path). It never partially writes: an unsupported
// variant produces no output file at all.
func (p *Processor) ConvertFile(job worker.Job) worker.Result {
	res := worker.Result{Job: job}

	inPath := EnsureExtension(job.Path, ".trl")
	content, err := os.ReadFile(inPath) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		res.Err = errors.Wrapf(err, "reading %s", inPath)
		return res
	}

	meta := convert.Meta{
		Event: p.cfg.Event,
		Site:  p.cfg.Site,
		Date:  FileDate(inPath),
		White: p.cfg.White,
		Black: p.cfg.Black,
	}
	if meta.Event == "" {
		meta.Event = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	}

	log := diag.New()
	game, err := convert.Convert(string(content), meta, log)
	res.Diagnostics = log.Entries()
	if err != nil {
		res.Err = errors.Wrapf(err, "converting %s", inPath)
		return res
	}

	outPath := p.outPath
	if outPath == "" {
		outPath = DefaultOutputPath(inPath)
	} else {
		outPath = EnsureExtension(outPath, ".pgn")
	}

	if err := writeGameFile(outPath, game); err != nil {
		res.Err = err
		return res
	}
	res.OutputPath = outPath
	return res
}

// writeGameFile writes the game to path in PGN format.
func writeGameFile(path string, game *convert.Game) error {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	writer := output.NewPGNWriter(file)
	if err := writer.WriteGame(game); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		return errors.Wrapf(err, "writing %s", path)
	}
	return file.Close()
}

// EnsureExtension appends ext unless the path already ends with it,
// compared case-insensitively.
func EnsureExtension(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return path
	}
	return path + ext
}

// DefaultOutputPath derives the .pgn path from the input path.
func DefaultOutputPath(inPath string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".pgn"
}

// FileDate formats the file's modification time as a PGN date tag value,
// falling back to the unknown-date sentinel when the file cannot be
// inspected.
func FileDate(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return unknownDate
	}
	return info.ModTime().Format("2006.01.02")
}

// reportResult prints one conversion outcome.
func reportResult(res worker.Result, logW io.Writer, verbosity int) {
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		return
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stdout, "Conversion completed. PGN file saved as %s\n", res.OutputPath)
	}
	if verbosity > 1 {
		for _, d := range res.Diagnostics {
			fmt.Fprintln(logW, d)
		}
	}
}
