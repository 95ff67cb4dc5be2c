package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded files (plant and
// article images). It hides where the bytes end up; implementations return
// a public URL for the stored file.
type FileStorage interface {
	// Store writes the file contents under a generated name derived from the
	// original filename's extension and returns the public URL.
	Store(ctx context.Context, originalName string, contents io.Reader) (string, error)
}
