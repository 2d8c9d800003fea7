package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Options configures the download behavior
type Options struct {
	MaxSize       int64         // Maximum file size in bytes (0 = no limit)
	Timeout       time.Duration // Download timeout
	UserAgent     string        // User agent string
	ValidateVideo bool          // Validate content-type is video
}

// DefaultOptions returns default download options
func DefaultOptions() Options {
	return Options{
		MaxSize:       4 * 1024 * 1024 * 1024, // 4GB default max
		Timeout:       5 * time.Minute,
		UserAgent:     "SwipeCut/1.0",
		ValidateVideo: true,
	}
}

// Result contains information about a successful download
type Result struct {
	FilePath      string // Path to downloaded file
	ContentType   string // Content-Type from response
	ContentLength int64  // Size in bytes
}

// Downloader fetches remote media to local files. Bytes are written under a
// temporary name and renamed into place only on success, so a partially
// written file is never visible at the destination path.
type Downloader struct {
	client  *http.Client
	options Options
}

// NewDownloader creates a new downloader with the given options
func NewDownloader(options Options) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress media
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// Fetch downloads url to destPath
func (d *Downloader) Fetch(ctx context.Context, url, destPath string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", d.options.UserAgent)
	req.Header.Set("Accept", "video/*,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if d.options.ValidateVideo && !isVideoContentType(contentType) {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	if d.options.MaxSize > 0 && resp.ContentLength > d.options.MaxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", resp.ContentLength, d.options.MaxSize)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return nil, fmt.Errorf("creating destination directory: %w", err)
	}

	// Write under a temp name, rename into place on success
	tempPath := destPath + ".part"
	out, err := os.Create(tempPath)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	written, err := d.copyBody(out, resp.Body)
	closeErr := out.Close()

	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("writing download: %w", err)
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("finalizing download: %w", err)
	}

	log.Printf("[DEBUG] Downloaded %d bytes to %s", written, destPath)

	return &Result{
		FilePath:      destPath,
		ContentType:   contentType,
		ContentLength: written,
	}, nil
}

// copyBody copies the response body with the configured size limit
func (d *Downloader) copyBody(dst io.Writer, src io.Reader) (int64, error) {
	reader := src
	if d.options.MaxSize > 0 {
		reader = &io.LimitedReader{R: src, N: d.options.MaxSize}
	}
	return io.Copy(dst, reader)
}

// isVideoContentType checks if content type is video
func isVideoContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.HasPrefix(contentType, "video/") ||
		contentType == "application/octet-stream" // Some servers use this for media
}
