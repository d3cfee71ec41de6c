package rom

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Suffix identifies a CHIP-8 ROM file. The match is case sensitive.
const Suffix = ".ch8"

// ErrNoToken is returned when a filename has nothing to build an identifier
// from. For example, a file named " .ch8".
var ErrNoToken = errors.New("no identifier token in filename")

// IsROM returns true if the filename has the ROM suffix.
func IsROM(filename string) bool {
	return strings.HasSuffix(filename, Suffix)
}

// Stem returns the filename without the ROM suffix. Casing and spacing are
// preserved. The stem is used as the display name of the ROM.
func Stem(filename string) string {
	return strings.TrimSuffix(filename, Suffix)
}

// Token returns the lowercased first whitespace delimited word of the stem.
//
//	"Invaders (Alt).ch8" -> "invaders"
func Token(filename string) (string, error) {
	f := strings.Fields(Stem(filename))
	if len(f) == 0 {
		return "", errors.Wrapf(ErrNoToken, "%q", filename)
	}
	return strings.ToLower(f[0]), nil
}

// Identifier combines the ROM number and token. Numbers are zero padded to
// three digits. Numbers larger than 999 are not truncated.
func Identifier(n int, token string) string {
	return fmt.Sprintf("%03d-%s", n, token)
}
