// Command romindex copies the CHIP-8 ROMs of a collection into the web build
// and writes the JSON index read by the web loader.
//
//	romindex -o www/roms/index.json [-v] ROOT
//
// ROMs are copied into the directory containing the index.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/chip8web/logger"
	"github.com/jetsetilly/chip8web/rom"
	"github.com/jetsetilly/chip8web/ui"
	"github.com/jetsetilly/chip8web/version"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var output string
	var sources string
	var verbose bool
	var failOnCollision bool
	var showVersion bool

	flgs := pflag.NewFlagSet("romindex", pflag.ContinueOnError)
	flgs.SetOutput(stderr)
	flgs.StringVarP(&output, "output", "o", "", "output index path (FILE.json)")
	flgs.BoolVarP(&verbose, "verbose", "v", false, "more verbose output")
	flgs.StringVar(&sources, "sources", "", "YAML list of source directories and their provenance")
	flgs.BoolVar(&failOnCollision, "fail-on-collision", false, "stop if a copied ROM would replace an existing file")
	flgs.BoolVar(&showVersion, "version", false, "print version and exit")
	flgs.Usage = func() {
		fmt.Fprintln(stderr, "Generate JSON index for CHIP8 roms")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "usage: romindex -o FILE.json [-v] ROOT")
		fmt.Fprint(stderr, flgs.FlagUsages())
	}

	if err := flgs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String("romindex"))
		return exitOK
	}

	if output == "" || flgs.NArg() != 1 {
		flgs.Usage()
		return exitUsage
	}

	if verbose {
		logger.SetEcho(stderr, true)
	}

	opts := rom.Options{
		Root:    flgs.Arg(0),
		Output:  output,
		Verbose: verbose,
		Echo:    stdout,
	}

	if failOnCollision {
		opts.Collision = rom.Fail
	}

	if sources != "" {
		srcs, err := rom.LoadSources(sources)
		if err != nil {
			ui.Fail(stderr, err)
			return exitError
		}
		opts.Sources = srcs
	}

	if _, err := rom.Run(opts); err != nil {
		ui.Fail(stderr, err)
		return exitError
	}

	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
