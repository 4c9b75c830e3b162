// Package frame extracts the final frame of a video file using the ffmpeg CLI.
package frame

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
)

// DefaultTimeout bounds a single ffmpeg invocation.
const DefaultTimeout = 60 * time.Second

// seekBeforeEnd is how far before end-of-stream ffmpeg seeks before
// grabbing the frame. Seeking instead of decoding the whole stream keeps
// extraction fast, at the cost of occasionally missing the true last
// frame on very short or variable-frame-rate inputs.
const seekBeforeEnd = "-0.1"

// ErrInputRequired is returned when the input path is empty.
var ErrInputRequired = errors.New("frame: input path is required")

// TimeoutError is returned when ffmpeg exceeds the configured wall-clock bound.
type TimeoutError struct {
	// Timeout is the bound that was exceeded.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("frame: ffmpeg timed out after %s", e.Timeout)
}

// ExecError is returned when ffmpeg exits nonzero or produces no output
// file. Stderr holds the tool's diagnostic output with any invalid
// UTF-8 replaced.
type ExecError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("frame: ffmpeg failed (code %d): %s", e.ExitCode, e.Stderr)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Extractor pulls the last frame out of video files via the ffmpeg CLI.
type Extractor struct {
	ffmpegPath string
	tempDir    string
	timeout    time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout sets the wall-clock bound for a single ffmpeg run.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithTempDir sets the directory output frames are written to.
func WithTempDir(dir string) Option {
	return func(e *Extractor) {
		if dir != "" {
			e.tempDir = dir
		}
	}
}

// NewExtractor creates an Extractor.
// If ffmpegPath is empty, it defaults to "ffmpeg" (found via PATH).
// Output frames go to the OS temp directory unless WithTempDir is given.
func NewExtractor(ffmpegPath string, opts ...Option) *Extractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	e := &Extractor{
		ffmpegPath: ffmpegPath,
		tempDir:    os.TempDir(),
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLastFrame seeks near the end of the video at inputPath, decodes
// a single frame, applies the size transform, and writes the result to a
// uniquely named file in the extractor's temp directory. It returns the
// output path; on success the file is guaranteed to exist and be non-empty.
//
// rawFormat and rawSize are normalized the same way the preference store
// normalizes them, so callers may pass user input directly.
//
// The caller owns the returned file and is responsible for deleting it.
func (e *Extractor) ExtractLastFrame(ctx context.Context, inputPath, rawFormat, rawSize string) (string, error) {
	if inputPath == "" {
		return "", ErrInputRequired
	}

	format := prefs.NormalizeFormat(rawFormat)
	size := prefs.NormalizeSize(rawSize)

	outputPath := filepath.Join(e.tempDir, fmt.Sprintf("last_frame_%s.%s", uuid.NewString(), format.Ext()))

	args := []string{
		"-y",
		"-sseof", seekBeforeEnd,
		"-i", inputPath,
	}
	if filter := scaleFilter(size); filter != "" {
		args = append(args, "-vf", filter)
	}
	args = append(args, "-vframes", "1", outputPath)

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(runCtx, e.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		// A partial output file may exist after the kill; it is not valid.
		_ = os.Remove(outputPath)
		return "", &TimeoutError{Timeout: e.timeout}
	}

	if err != nil {
		_ = os.Remove(outputPath)
		return "", &ExecError{
			ExitCode: exitCode(cmd),
			Stderr:   strings.ToValidUTF8(stderr.String(), "�"),
			Err:      err,
		}
	}

	info, statErr := os.Stat(outputPath)
	if statErr != nil || info.Size() == 0 {
		_ = os.Remove(outputPath)
		return "", &ExecError{
			ExitCode: exitCode(cmd),
			Stderr:   strings.ToValidUTF8(stderr.String(), "�"),
			Err:      errors.New("frame: ffmpeg exited 0 but wrote no output"),
		}
	}

	return outputPath, nil
}

// exitCode returns the process exit code, or -1 if the command never ran.
func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

// scaleFilter builds the ffmpeg -vf expression for a size mode.
// Returns "" when no transform is needed.
func scaleFilter(size prefs.Size) string {
	switch size {
	case prefs.Size1024:
		// Larger side becomes 1024, the other is scaled proportionally
		// and rounded to an even number (-2), orientation decided at
		// run time from the actual stream dimensions.
		return "scale='if(gt(iw,ih),1024,-2)':'if(gt(ih,iw),1024,-2)'"
	case prefs.Size1024Sq:
		// Cover-fit into 1024x1024, then center-crop the overflow.
		return "scale=1024:1024:force_original_aspect_ratio=increase,crop=1024:1024"
	default:
		return ""
	}
}
