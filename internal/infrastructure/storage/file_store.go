package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

// fileStore struct that implements the MediaStore interface on top of the
// shared media volume
type fileStore struct {
	root   string
	logger logger.Logger
}

// NewFileStore creates and returns a new instance of fileStore rooted at the
// configured media directory, creating it if needed
func NewFileStore(settings *config.StorageSettings, logger logger.Logger) (recipes.MediaStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage settings: %w", err)
	}

	if err := os.MkdirAll(settings.MediaRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}

	return &fileStore{
		root:   settings.MediaRoot,
		logger: logger,
	}, nil
}

// Save writes content at the relative path beneath the media root.
func (s *fileStore) Save(ctx context.Context, relPath string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write media file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close media file: %w", err)
	}

	s.logger.Info("Stored media file ", relPath)
	return nil
}

// Remove deletes the file at the relative path. Missing files are not an
// error.
func (s *fileStore) Remove(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove media file: %w", err)
	}

	s.logger.Info("Removed media file ", relPath)
	return nil
}

// resolve joins the relative path onto the root and rejects anything that
// would land outside it.
func (s *fileStore) resolve(relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", fmt.Errorf("path must be relative: %s", relPath)
	}

	fullPath := filepath.Join(s.root, relPath)
	if !strings.HasPrefix(fullPath, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes media root: %s", relPath)
	}

	return fullPath, nil
}
