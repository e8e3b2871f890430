package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded media files.
// The stored name is a generated opaque identifier; the original filename
// is discarded except for its extension.
type FileStorage interface {
	// Save writes the content and returns the public URL path of the file.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}
