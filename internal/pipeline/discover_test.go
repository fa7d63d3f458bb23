package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "a.WAV"))
	touch(t, filepath.Join(dir, "c.txt"))
	touch(t, filepath.Join(dir, "sub", "d.wav"))

	exts := ExtSet([]string{".wav"})

	t.Run("non-recursive", func(t *testing.T) {
		files, err := Discover(dir, exts, false)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.WAV"),
			filepath.Join(dir, "b.wav"),
		}, files)
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := Discover(dir, exts, true)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.WAV"),
			filepath.Join(dir, "b.wav"),
			filepath.Join(dir, "sub", "d.wav"),
		}, files)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Discover(filepath.Join(dir, "nope"), exts, false)
		assert.Error(t, err)
	})
}

func TestExtSet(t *testing.T) {
	set := ExtSet([]string{"wav", ".FLAC", " mp3 ", ""})
	assert.Equal(t, map[string]bool{".wav": true, ".flac": true, ".mp3": true}, set)
}
