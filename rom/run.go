package rom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/chip8web/logger"
	"github.com/pkg/errors"
)

// Options for Run().
type Options struct {
	// Root of the ROM collection. Source directories are relative to Root
	Root string

	// Output is the path of the manifest file. ROMs are copied into the
	// directory containing the manifest
	Output string

	// Sources to search. If Sources is nil then DefaultSources is used
	Sources Sources

	Collision Collision

	// if Verbose is set the indented form of the manifest is written to Echo
	// before the manifest file is written
	Verbose bool
	Echo    io.Writer
}

// Run scans the collection, exports the ROMs and writes the manifest. The
// manifest is returned on success.
func Run(opts Options) (Manifest, error) {
	srcs := opts.Sources
	if srcs == nil {
		srcs = DefaultSources
	}

	if _, err := os.Stat(opts.Root); err != nil {
		return nil, errors.Wrap(err, "root")
	}
	fsys := os.DirFS(opts.Root)

	logger.Logf(logger.Allow, "romindex", "collisions: %s", opts.Collision)

	items, err := Scan(fsys, srcs)
	if err != nil {
		return nil, err
	}

	if err := Export(fsys, items, filepath.Dir(opts.Output), opts.Collision); err != nil {
		return nil, err
	}

	m := NewManifest(items)

	if opts.Verbose && opts.Echo != nil {
		b, err := m.Indent()
		if err != nil {
			return nil, errors.Wrap(err, "manifest")
		}
		if _, err := fmt.Fprintln(opts.Echo, string(b)); err != nil {
			return nil, err
		}
	}

	if err := WriteManifest(opts.Output, m); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "romindex", "%d roms indexed in %s", len(m), opts.Output)

	return m, nil
}
