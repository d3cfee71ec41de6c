package rom

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/chip8web/logger"
	"github.com/pkg/errors"
)

// Collision decides what Export() does when a destination file already exists.
type Collision int

// List of valid Collision values.
const (
	// the existing file is replaced. running the indexer twice into the same
	// output directory is expected to replace the previous run's files
	Overwrite Collision = iota

	// the export stops with ErrCollision
	Fail
)

func (c Collision) String() string {
	switch c {
	case Overwrite:
		return "overwrite"
	case Fail:
		return "fail"
	}
	return fmt.Sprintf("Collision(%d)", int(c))
}

// ErrCollision is returned by Export() when a destination file exists and the
// Collision policy is Fail.
var ErrCollision = errors.New("destination already exists")

// Export copies every item from the file system into the destination
// directory. Each copy is named after the item's identifier, with no suffix.
// The destination directory must exist.
//
// Copying stops at the first failure. Files copied before the failure are left
// in place.
func Export(fsys fs.FS, items []Item, dstDir string, collision Collision) error {
	for _, it := range items {
		dst := filepath.Join(dstDir, it.ID)
		if err := copyFile(fsys, it.Path, dst, collision); err != nil {
			return errors.Wrapf(err, "export: %s", it.ID)
		}
		logger.Logf(logger.Allow, "romindex", "%s -> %s", it.Path, dst)
	}
	return nil
}

func copyFile(fsys fs.FS, src string, dst string, collision Collision) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if collision == Fail {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	out, err := os.OpenFile(dst, flag, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Wrap(ErrCollision, dst)
		}
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Close()
}
