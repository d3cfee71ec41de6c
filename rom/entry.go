package rom

import (
	"encoding/json"
	"maps"
)

// Entry describes one ROM in the manifest.
type Entry struct {
	// Name is the filename without suffix, as it appeared in the collection
	Name string

	// Provenance is inherited from the Source the ROM was found in
	Provenance map[string]string
}

func newEntry(filename string, src Source) Entry {
	return Entry{
		Name:       Stem(filename),
		Provenance: maps.Clone(src.Provenance),
	}
}

// fields flattens the entry. Provenance fields are applied after the name
// field, so a provenance "name" field replaces the display name.
func (e Entry) fields() map[string]string {
	f := make(map[string]string, len(e.Provenance)+1)
	f["name"] = e.Name
	maps.Copy(f, e.Provenance)
	return f
}

// MarshalJSON implements the json.Marshaler interface. Provenance fields are
// merged into the top level of the entry object.
func (e Entry) MarshalJSON() ([]byte, error) {
	return encode(e.fields(), "")
}

// UnmarshalJSON implements the json.Unmarshaler interface. Every field other
// than "name" is treated as provenance.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var f map[string]string
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	e.Name = f["name"]
	delete(f, "name")
	if len(f) == 0 {
		f = nil
	}
	e.Provenance = f

	return nil
}
