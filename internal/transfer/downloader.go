package transfer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lxzugm-boop/lastframe-bot/internal/storage"
)

// videoPattern names downloaded videos in the scratch directory.
// The .mp4 suffix is fixed regardless of the true codec; ffmpeg probes
// the container itself.
const videoPattern = "input_*.mp4"

// FileDownloader streams a Telegram file by file_id.
// Implemented by telegram.Client.
type FileDownloader interface {
	DownloadFile(ctx context.Context, fileID string, w io.Writer) error
}

// DownloadError wraps a transport failure while fetching media.
type DownloadError struct {
	FileID string
	Err    error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("transfer: download %s: %v", e.FileID, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Downloader fetches inbound media into uniquely named transient files.
type Downloader struct {
	client FileDownloader
	store  storage.Storage
}

// NewDownloader creates a Downloader backed by the given client and
// scratch storage.
func NewDownloader(client FileDownloader, store storage.Storage) *Downloader {
	return &Downloader{client: client, store: store}
}

// FetchMedia downloads the media to a transient local file and returns
// its path. The caller owns the file and is responsible for deleting it.
func (d *Downloader) FetchMedia(ctx context.Context, m Media) (string, error) {
	return d.FetchByFileID(ctx, m.FileID)
}

// FetchByFileID downloads media by its opaque stored reference. Used
// for regeneration without re-upload.
func (d *Downloader) FetchByFileID(ctx context.Context, fileID string) (string, error) {
	f, err := d.store.CreateTemp(videoPattern)
	if err != nil {
		return "", fmt.Errorf("transfer: create temp file: %w", err)
	}
	path := f.Name()

	if err := d.client.DownloadFile(ctx, fileID, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", &DownloadError{FileID: fileID, Err: err}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("transfer: close temp file: %w", err)
	}

	return path, nil
}
