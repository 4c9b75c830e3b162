// Package storage manages transient scratch files for one extraction
// request and, when configured, an S3 archive of extracted frames.
package storage

import (
	"context"
	"io"
	"os"
)

// Storage provides scratch space for per-request transient files plus
// an optional frame archive.
type Storage interface {
	// TempDir returns the scratch directory path.
	TempDir() string

	// CreateTemp opens a uniquely named file in the scratch directory
	// for writing. pattern follows os.CreateTemp conventions, e.g.
	// "input_*.mp4". The caller owns the file and its deletion.
	CreateTemp(pattern string) (*os.File, error)

	// CleanupTemp removes the given scratch files. Missing files are
	// not an error; the first real failure is returned after all paths
	// have been attempted.
	CleanupTemp(ctx context.Context, paths []string) error

	// ArchiveFrame uploads an extracted frame under the given key and
	// returns its URL. Implementations without an archive backend
	// return ErrArchiveNotConfigured.
	ArchiveFrame(ctx context.Context, key string, data io.Reader) (string, error)
}
