package rom

import (
	"io/fs"
	"path"

	"github.com/jetsetilly/chip8web/logger"
	"github.com/pkg/errors"
)

// Item is a ROM found by Scan().
type Item struct {
	ID string

	// Path of the ROM in the file system given to Scan()
	Path string

	Entry Entry
}

// Scan finds the ROMs in each source and assigns identifiers to them. Sources
// are visited in order and ROMs within a source are visited in filename order.
//
// Numbering is shared by all sources and starts at one. The first ROM found
// in the second source is numbered one higher than the last ROM of the first
// source.
//
// Every source directory must exist in the file system.
func Scan(fsys fs.FS, sources Sources) ([]Item, error) {
	var items []Item
	var err error

	for _, src := range sources {
		items, err = scanSource(fsys, src, items)
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

// scanSource appends the ROMs of a single source to the items found so far.
// The length of the slice is the number of the most recent ROM.
func scanSource(fsys fs.FS, src Source, items []Item) ([]Item, error) {
	logger.Debugf("romindex", "scanning %s", src.Dir)

	ents, err := fs.ReadDir(fsys, src.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	for _, e := range ents {
		if e.IsDir() || !IsROM(e.Name()) {
			continue
		}

		tok, err := Token(e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "scan: %s", src.Dir)
		}

		items = append(items, Item{
			ID:    Identifier(len(items)+1, tok),
			Path:  path.Join(src.Dir, e.Name()),
			Entry: newEntry(e.Name(), src),
		})
	}

	return items, nil
}
