//go:build unit
// +build unit

package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) (recipes.MediaStore, string) {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	mediaRoot := t.TempDir()
	settings := &config.StorageSettings{
		MediaRoot:  mediaRoot,
		StaticRoot: t.TempDir(),
	}

	store, err := NewFileStore(settings, logger)
	require.NoError(t, err)
	return store, mediaRoot
}

func TestFileStore_SaveAndRemove(t *testing.T) {
	store, mediaRoot := setupFileStore(t)
	ctx := context.Background()

	content := []byte("image bytes")
	relPath := filepath.Join("uploads", "recipe", "photo.png")

	require.NoError(t, store.Save(ctx, relPath, bytes.NewReader(content)))

	written, err := os.ReadFile(filepath.Join(mediaRoot, relPath))
	require.NoError(t, err)
	assert.Equal(t, content, written)

	require.NoError(t, store.Remove(ctx, relPath))
	_, err = os.Stat(filepath.Join(mediaRoot, relPath))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_RemoveMissingFile(t *testing.T) {
	store, _ := setupFileStore(t)

	// Removing something that never existed is not an error
	err := store.Remove(context.Background(), filepath.Join("uploads", "recipe", "missing.png"))
	assert.NoError(t, err)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, mediaRoot := setupFileStore(t)
	ctx := context.Background()

	relPath := filepath.Join("uploads", "recipe", "photo.png")
	require.NoError(t, store.Save(ctx, relPath, bytes.NewReader([]byte("first"))))
	require.NoError(t, store.Save(ctx, relPath, bytes.NewReader([]byte("second"))))

	written, err := os.ReadFile(filepath.Join(mediaRoot, relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), written)
}

func TestFileStore_RejectsEscapingPaths(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	err := store.Save(ctx, filepath.Join("..", "outside.png"), bytes.NewReader([]byte("x")))
	require.Error(t, err)

	err = store.Save(ctx, "/etc/passwd", bytes.NewReader([]byte("x")))
	require.Error(t, err)
}
