package rom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/chip8web/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestLoadSources(t *testing.T) {
	fn := writeSources(t, `
- dir: revival-pack/games
  provenance:
    source: https://github.com/dmatlack/chip8
- dir: ./revival-pack/demos/
  provenance:
    source: https://example.com/demos
    licence: public domain
- dir: misc
`)

	srcs, err := rom.LoadSources(fn)
	require.NoError(t, err)
	require.Len(t, srcs, 3)

	assert.Equal(t, rom.DefaultSources[0], srcs[0])
	assert.Equal(t, "revival-pack/demos", srcs[1].Dir)
	assert.Equal(t, "public domain", srcs[1].Provenance["licence"])
	assert.Equal(t, "misc", srcs[2].Dir)
	assert.Empty(t, srcs[2].Provenance)
}

func TestLoadSources_invalid(t *testing.T) {
	_, err := rom.LoadSources(writeSources(t, "- provenance:\n    source: x\n"))
	assert.Error(t, err)

	_, err = rom.LoadSources(writeSources(t, "- dir: /abs/path\n"))
	assert.Error(t, err)

	_, err = rom.LoadSources(writeSources(t, "dir: not a list\n"))
	assert.Error(t, err)

	_, err = rom.LoadSources(writeSources(t, "# no sources yet\n"))
	assert.ErrorIs(t, err, rom.ErrNoSources)

	_, err = rom.LoadSources(writeSources(t, ""))
	assert.ErrorIs(t, err, rom.ErrNoSources)

	_, err = rom.LoadSources(writeSources(t, "[]\n"))
	assert.ErrorIs(t, err, rom.ErrNoSources)

	_, err = rom.LoadSources(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
