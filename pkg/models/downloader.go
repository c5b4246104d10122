package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/cli"
)

// ErrAPIOnly is returned when a download is requested for a cloud API model
// that has no artifact.
var ErrAPIOnly = errors.New("model is API-only and has no artifact to download")

// Downloader fetches model artifacts into a local directory.
type Downloader struct {
	// dir is the directory artifacts are stored in.
	dir string

	// client is the HTTP client used for downloads.
	client *http.Client

	// newProgress builds a progress reporter per artifact.
	newProgress func(label string) cli.ProgressReporter
}

// NewDownloader creates a downloader that stores artifacts in dir.
// If newProgress is nil, downloads run without progress reporting.
func NewDownloader(dir string, newProgress func(label string) cli.ProgressReporter) *Downloader {
	if newProgress == nil {
		newProgress = func(string) cli.ProgressReporter { return cli.NopProgress{} }
	}
	return &Downloader{
		dir:         dir,
		client:      &http.Client{Timeout: 0}, // large artifacts; ctx governs cancellation
		newProgress: newProgress,
	}
}

// Path returns where a model's artifact lives on disk.
func (d *Downloader) Path(model Model) string {
	return filepath.Join(d.dir, model.File)
}

// Download fetches a model artifact if it is not already present.
// It reports progress, verifies the downloaded size against the catalog's
// expected size, and removes partial files on failure. Already-present
// artifacts are skipped without a network round trip.
func (d *Downloader) Download(ctx context.Context, model Model) error {
	if model.API {
		return fmt.Errorf("download %s: %w", model.Key, ErrAPIOnly)
	}

	path := d.Path(model)
	if _, err := os.Stat(path); err == nil {
		slog.Info("model artifact already present", "model", model.Key, "path", path)
		return nil
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create models directory: %w", err)
	}

	slog.Info("downloading model artifact",
		"model", model.Key,
		"url", model.URL,
		"expected_bytes", model.Size,
	)

	progress := d.newProgress(model.File)
	if err := d.fetch(ctx, model, path, progress); err != nil {
		progress.Error(err)
		// Remove the partial file so a retry starts clean.
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			slog.Warn("failed to remove partial download", "path", path, "error", removeErr)
		}
		return err
	}

	progress.Finish()
	return nil
}

// fetch streams the artifact to disk with progress updates.
func (d *Downloader) fetch(ctx context.Context, model Model, path string, progress cli.ProgressReporter) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, model.URL, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", model.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", model.Key, resp.Status)
	}

	total := model.Size
	if total <= 0 {
		total = resp.ContentLength
	}
	progress.Start(total)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	written, err := io.Copy(file, &progressReader{
		reader:   resp.Body,
		progress: progress,
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if model.Size > 0 && written != model.Size {
		// A size mismatch is suspicious but not fatal; upstream files get
		// re-quantized without the catalog noticing.
		slog.Warn("downloaded size differs from expected",
			"model", model.Key,
			"expected", model.Size,
			"actual", written,
		)
	}

	return nil
}

// progressReader forwards Read calls while updating a progress reporter.
type progressReader struct {
	reader   io.Reader
	progress cli.ProgressReporter
	read     int64
	lastTick time.Time
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.read += int64(n)

	// Throttle terminal redraws.
	if now := time.Now(); now.Sub(r.lastTick) > 100*time.Millisecond || err == io.EOF {
		r.progress.Update(r.read)
		r.lastTick = now
	}
	return n, err
}
