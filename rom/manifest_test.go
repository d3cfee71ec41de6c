package rom_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/chip8web/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() rom.Manifest {
	return rom.NewManifest([]rom.Item{
		{ID: "002-pong", Entry: rom.Entry{Name: "PONG", Provenance: map[string]string{"source": "https://example.com/x"}}},
		{ID: "001-invaders", Entry: rom.Entry{Name: "Invaders (Alt)", Provenance: map[string]string{"source": "https://example.com/x"}}},
	})
}

func TestEntryJSON(t *testing.T) {
	e := rom.Entry{Name: "Invaders (Alt)", Provenance: map[string]string{"source": "https://example.com/x"}}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Invaders (Alt)", "source": "https://example.com/x"}`, string(b))

	var d rom.Entry
	require.NoError(t, json.Unmarshal(b, &d))
	assert.Equal(t, e, d)
}

func TestEntryJSON_provenanceName(t *testing.T) {
	e := rom.Entry{Name: "PONG", Provenance: map[string]string{"name": "Pong (1990)"}}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Pong (1990)"}`, string(b))
}

func TestEntryJSON_noProvenance(t *testing.T) {
	var d rom.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"name": "PONG"}`), &d))
	assert.Equal(t, rom.Entry{Name: "PONG"}, d)
}

func TestManifest_forms(t *testing.T) {
	m := testManifest()

	indent, err := m.Indent()
	require.NoError(t, err)
	compact, err := m.Compact()
	require.NoError(t, err)

	// indented form has sorted keys
	s := string(indent)
	assert.Less(t, strings.Index(s, "001-invaders"), strings.Index(s, "002-pong"))
	assert.Contains(t, s, "\n    \"001-invaders\"")
	assert.NotContains(t, string(compact), "\n")

	// both forms describe the same mapping
	var a, b map[string]map[string]string
	require.NoError(t, json.Unmarshal(indent, &a))
	require.NoError(t, json.Unmarshal(compact, &b))
	assert.Equal(t, a, b)
	assert.Equal(t, "Invaders (Alt)", a["001-invaders"]["name"])
}

func TestManifest_empty(t *testing.T) {
	b, err := rom.NewManifest(nil).Compact()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestWriteManifest(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "index.json")
	m := testManifest()

	require.NoError(t, rom.WriteManifest(fn, m))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)

	var d rom.Manifest
	require.NoError(t, json.Unmarshal(b, &d))
	assert.Equal(t, m, d)
}

func TestWriteManifest_missingDir(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "index.json")
	err := rom.WriteManifest(fn, testManifest())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManifest_unescaped(t *testing.T) {
	m := rom.NewManifest([]rom.Item{
		{ID: "001-tic", Entry: rom.Entry{Name: "Tic & <Tac>", Provenance: map[string]string{"source": "https://example.com/?a=1&b=2"}}},
	})

	indent, err := m.Indent()
	require.NoError(t, err)
	assert.Contains(t, string(indent), `"name": "Tic & <Tac>"`)
	assert.Contains(t, string(indent), `"source": "https://example.com/?a=1&b=2"`)
	assert.False(t, strings.HasSuffix(string(indent), "\n"))

	compact, err := m.Compact()
	require.NoError(t, err)
	assert.Equal(t, `{"001-tic":{"name":"Tic & <Tac>","source":"https://example.com/?a=1&b=2"}}`, string(compact))

	var d rom.Manifest
	require.NoError(t, json.Unmarshal(compact, &d))
	assert.Equal(t, m, d)
}
