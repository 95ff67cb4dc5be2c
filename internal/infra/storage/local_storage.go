// Package storage provides file storage backed by the local filesystem.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"planta/config"
	"planta/internal/domain/service"
	"planta/internal/errors"

	"github.com/google/uuid"
)

// localStorage implements the service.FileStorage interface by writing
// uploads into a directory served as static files. Stored names are random
// UUIDs so an uploaded filename can never collide with or overwrite another.
type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage is the constructor for localStorage. It ensures the
// upload directory exists.
func NewLocalStorage(cfg *config.Config) (service.FileStorage, error) {
	dir := cfg.Upload.Dir
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &localStorage{
		dir:     dir,
		baseURL: strings.TrimRight(cfg.Upload.BaseURL, "/"),
	}, nil
}

// Store writes the file contents under a generated name and returns the
// public URL. Only the extension of the original filename is kept.
func (s *localStorage) Store(ctx context.Context, originalName string, contents io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "upload cancelled")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, contents); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return s.baseURL + "/uploads/" + name, nil
}
