package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

// StaticCollector copies the bundled static assets onto the shared volume
// the edge server serves from.
type StaticCollector struct {
	source string
	target string
	logger logger.Logger
}

// NewStaticCollector creates and returns a new instance of StaticCollector
func NewStaticCollector(settings *config.StorageSettings, logger logger.Logger) (*StaticCollector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage settings: %w", err)
	}
	if settings.StaticSource == "" {
		return nil, fmt.Errorf("static source directory is required")
	}

	return &StaticCollector{
		source: settings.StaticSource,
		target: settings.StaticRoot,
		logger: logger,
	}, nil
}

// Collect walks the source tree and copies every file into the static root,
// preserving relative paths. It returns the number of files copied.
func (c *StaticCollector) Collect(ctx context.Context) (int, error) {
	if err := os.MkdirAll(c.target, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create static root: %w", err)
	}

	count := 0
	err := filepath.WalkDir(c.source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(c.source, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(c.target, relPath)
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, targetPath); err != nil {
			return err
		}

		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to collect static files: %w", err)
	}

	c.logger.Info("Collected ", count, " static files into ", c.target)
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
