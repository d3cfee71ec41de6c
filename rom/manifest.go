package rom

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Manifest maps ROM identifiers to entries. It is the index read by the web
// loader.
type Manifest map[string]Entry

// NewManifest collects the items into a manifest.
func NewManifest(items []Item) Manifest {
	m := make(Manifest, len(items))
	for _, it := range items {
		m[it.ID] = it.Entry
	}
	return m
}

// Indent returns the manifest as indented JSON with sorted keys. Intended for
// people rather than the loader.
func (m Manifest) Indent() ([]byte, error) {
	return encode(m, "    ")
}

// Compact returns the manifest in the form written to disk.
func (m Manifest) Compact() ([]byte, error) {
	return encode(m, "")
}

// encode is like json.Marshal() but leaves &, < and > unescaped. ROM names
// often contain an ampersand.
func encode(v any, indent string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// WriteManifest writes the compact form of the manifest to the named file.
// The file is created or truncated. The directory containing the file must
// already exist.
func WriteManifest(filename string, m Manifest) error {
	b, err := m.Compact()
	if err != nil {
		return errors.Wrap(err, "manifest")
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "manifest")
	}
	defer f.Close()

	n, err := f.Write(b)
	if err != nil {
		return errors.Wrap(err, "manifest")
	}
	if n != len(b) {
		return errors.Errorf("manifest: %s not completely written", filename)
	}

	return errors.Wrap(f.Close(), "manifest")
}
