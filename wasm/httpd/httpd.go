// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Command httpd serves the current directory over HTTP for testing the web
// build. WebAssembly modules are served as application/wasm.
//
//	httpd [-p PORT]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/chip8web/httpd"
	"github.com/jetsetilly/chip8web/logger"
	"github.com/jetsetilly/chip8web/ui"
	"github.com/jetsetilly/chip8web/version"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type options struct {
	port    int
	version bool
}

func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	flgs := pflag.NewFlagSet("httpd", pflag.ContinueOnError)
	flgs.SetOutput(output)
	flgs.IntVarP(&opts.port, "port", "p", httpd.DefaultPort, "port to be served")
	flgs.BoolVar(&opts.version, "version", false, "print version and exit")
	flgs.Usage = func() {
		fmt.Fprintln(output, "Debug HTTP server supporting WASM")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "usage: httpd [-p PORT]")
		fmt.Fprint(output, flgs.FlagUsages())
	}

	if err := flgs.Parse(args); err != nil {
		return opts, err
	}
	if flgs.NArg() > 0 {
		flgs.Usage()
		return opts, errors.Errorf("unexpected arguments: %v", flgs.Args())
	}

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.version {
		fmt.Println(version.String("httpd"))
		os.Exit(0)
	}

	logger.SetEcho(os.Stderr, false)

	ln, err := httpd.Listen(opts.port)
	if err != nil {
		ui.Fail(os.Stderr, err)
		os.Exit(1)
	}

	s := ui.NewStyles(os.Stdout)
	fmt.Printf("%s %s\n", s.Banner.Render("info:"), httpd.Banner(opts.port))

	if err := httpd.Serve(ln, "."); err != nil {
		ui.Fail(os.Stderr, err)
		os.Exit(1)
	}
}
