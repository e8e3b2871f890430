package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*localStorage, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{Media: &config.MediaConfig{Dir: dir, PublicURL: "/media"}}

	fs, err := NewLocalStorage(cfg)
	require.NoError(t, err)

	return fs.(*localStorage), dir
}

func TestLocalStorage_Save(t *testing.T) {
	fs, dir := newTestStorage(t)

	url, err := fs.Save(context.Background(), "photo.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	// URL path uses the public prefix and preserves the lowercased extension.
	assert.True(t, strings.HasPrefix(url, "/media/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The original filename never appears on disk.
	name := strings.TrimPrefix(url, "/media/")
	assert.NotContains(t, name, "photo")

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalStorage_SaveWithoutExtension(t *testing.T) {
	fs, _ := newTestStorage(t)

	url, err := fs.Save(context.Background(), "blob", strings.NewReader("data"))
	require.NoError(t, err)
	assert.NotContains(t, url, ".")
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	fs, _ := newTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.Save(ctx, "photo.jpg", strings.NewReader("data"))
	assert.Error(t, err)
}

func TestNewLocalStorage_MissingDir(t *testing.T) {
	_, err := NewLocalStorage(&config.Config{})
	assert.Error(t, err)
}
