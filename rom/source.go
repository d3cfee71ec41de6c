package rom

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Source is a directory of ROMs and the provenance shared by all of them.
type Source struct {
	// Dir is relative to the collection root and uses forward slashes
	Dir string `yaml:"dir"`

	// Provenance fields are copied into every entry created for a ROM in
	// the directory
	Provenance map[string]string `yaml:"provenance"`
}

// Sources are searched in slice order. The order decides how identifiers are
// numbered.
type Sources []Source

// DefaultSources is the collection layout of the CHIP-8 revival pack.
var DefaultSources = Sources{
	{
		Dir: "revival-pack/games",
		Provenance: map[string]string{
			"source": "https://github.com/dmatlack/chip8",
		},
	},
}

// ErrNoSources is returned by LoadSources() when the file lists no sources.
var ErrNoSources = errors.New("no sources listed")

// LoadSources reads a YAML list of sources. The list must not be empty. For
// example:
//
//	# sources.yaml
//	- dir: revival-pack/games
//	  provenance:
//	    source: https://github.com/dmatlack/chip8
func LoadSources(filename string) (Sources, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "sources")
	}

	var srcs Sources
	if err := yaml.Unmarshal(b, &srcs); err != nil {
		return nil, errors.Wrapf(err, "sources: %s", filename)
	}

	if len(srcs) == 0 {
		return nil, errors.Wrapf(ErrNoSources, "sources: %s", filename)
	}

	if err := srcs.normalise(); err != nil {
		return nil, errors.Wrapf(err, "sources: %s", filename)
	}

	return srcs, nil
}

// normalise cleans each directory so that it can be used with an fs.FS.
func (srcs Sources) normalise() error {
	for i := range srcs {
		d := srcs[i].Dir
		if d == "" {
			return errors.Errorf("entry %d has no dir", i)
		}
		if path.IsAbs(d) {
			return errors.Errorf("entry %d: dir must be relative to the root: %s", i, d)
		}
		srcs[i].Dir = path.Clean(d)
	}
	return nil
}
