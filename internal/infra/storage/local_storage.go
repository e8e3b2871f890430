// Package storage implements the FileStorage service on the local filesystem.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localStorage stores uploaded files under a single media directory and
// serves them from a static route. Files get a random name; only the
// original extension survives, so hostile filenames never hit the disk.
type localStorage struct {
	dir       string
	publicURL string
}

// NewLocalStorage is the constructor for localStorage.
func NewLocalStorage(cfg *config.Config) (service.FileStorage, error) {
	media := cfg.Media
	if media == nil || media.Dir == "" {
		return nil, errors.New("media directory must be configured")
	}

	if err := os.MkdirAll(media.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create media directory")
	}

	return &localStorage{
		dir:       media.Dir,
		publicURL: strings.TrimRight(media.PublicURL, "/"),
	}, nil
}

// Save writes the content and returns the public URL path of the file.
func (s *localStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())

		return "", errors.Wrap(err, "failed to write media file")
	}

	return s.publicURL + "/" + name, nil
}
