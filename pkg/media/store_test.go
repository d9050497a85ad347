package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	rel, err := store.Save("profile_pics", "Me.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "profile_pics/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, store.Remove(rel))
}

func TestStore_RejectsUnsupportedTypes(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"script.sh", "noext", "page.html"} {
		_, err := store.Save("profile_pics", name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUnsupportedType, name)
	}
}

func TestStore_RemoveStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	outside := filepath.Join(parent, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	store := NewStore(filepath.Join(parent, "media"))
	require.NoError(t, store.Remove("../keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
