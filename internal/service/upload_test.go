package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "garden-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("screenshot", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["screenshot"][0]
}

func newTestStore(t *testing.T, maxBytes int64) *UploadStore {
	t.Helper()
	store, err := NewUploadStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return store
}

func TestUploadStore_SavePNG(t *testing.T) {
	store := newTestStore(t, 5*1024*1024)

	path, err := store.Save(makeFileHeader(t, "shot.png", pngHeader))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/project-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// The stored file exists under the store directory.
	_, err = os.Stat(filepath.Join(store.Dir(), filepath.Base(path)))
	assert.NoError(t, err)
}

func TestUploadStore_ExtensionFollowsContentNotName(t *testing.T) {
	store := newTestStore(t, 5*1024*1024)

	// PNG bytes with a lying .gif name still store as .png.
	path, err := store.Save(makeFileHeader(t, "shot.gif", pngHeader))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"))
}

func TestUploadStore_RejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t, 5*1024*1024)

	_, err := store.Save(makeFileHeader(t, "notes.txt", []byte("just some text")))

	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestUploadStore_RejectsOversizedFile(t *testing.T) {
	store := newTestStore(t, 64)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 256)...)
	_, err := store.Save(makeFileHeader(t, "big.png", big))

	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestUploadStore_UniqueNames(t *testing.T) {
	store := newTestStore(t, 5*1024*1024)

	p1, err := store.Save(makeFileHeader(t, "a.png", pngHeader))
	require.NoError(t, err)
	p2, err := store.Save(makeFileHeader(t, "a.png", pngHeader))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestUploadStore_Remove(t *testing.T) {
	store := newTestStore(t, 5*1024*1024)

	path, err := store.Save(makeFileHeader(t, "shot.png", pngHeader))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(store.Dir(), filepath.Base(path)))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, store.Remove(path))
}
