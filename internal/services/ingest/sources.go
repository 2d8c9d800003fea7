package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/kokotatan/swipecut/pkg/errors"
)

// UploadSource stores a directly uploaded stream in the upload directory
type UploadSource struct {
	Reader    io.Reader
	Filename  string
	UploadDir string
}

// Fetch writes the upload to disk. The bytes go to a temporary name first
// and are renamed into place, so a failed write never leaves a visible
// source file behind.
func (u *UploadSource) Fetch(ctx context.Context) (*SourceFile, error) {
	filename := sanitizeFilename(u.Filename)
	if filename == "" {
		return nil, apperrors.ValidationError("filename", "must not be empty")
	}

	if err := os.MkdirAll(u.UploadDir, 0755); err != nil {
		return nil, apperrors.StorageError("create upload directory", err)
	}

	destPath := filepath.Join(u.UploadDir, filename)
	tempPath := destPath + ".part"

	out, err := os.Create(tempPath)
	if err != nil {
		return nil, apperrors.StorageError("create upload file", err)
	}

	written, err := io.Copy(out, u.Reader)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return nil, apperrors.StorageError("write upload", err)
	}
	if written == 0 {
		os.Remove(tempPath)
		return nil, apperrors.StorageError("write upload", fmt.Errorf("empty upload body"))
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return nil, apperrors.StorageError("finalize upload", err)
	}

	return &SourceFile{
		Path:     destPath,
		Filename: filename,
	}, nil
}

// PhotosSource fetches one item from the external photo library provider
type PhotosSource struct {
	Provider   MediaProvider
	Downloader Downloader
	ItemID     string
	UploadDir  string
}

// Fetch resolves the item's metadata, then downloads its media bytes into
// the upload directory under the item's original filename
func (p *PhotosSource) Fetch(ctx context.Context) (*SourceFile, error) {
	item, err := p.Provider.Item(ctx, p.ItemID)
	if err != nil {
		return nil, err
	}

	filename := sanitizeFilename(item.Filename)
	if filename == "" {
		filename = "unknown.mp4"
	}

	destPath := filepath.Join(p.UploadDir, filename)
	result, err := p.Downloader.Fetch(ctx, p.Provider.DownloadURL(item), destPath)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeUnauthorized) {
			return nil, err
		}
		return nil, apperrors.RemoteFetch("photos", err)
	}

	return &SourceFile{
		Path:     result.FilePath,
		Filename: filename,
	}, nil
}

// sanitizeFilename keeps only the base name so caller-supplied paths
// cannot escape the upload directory
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
