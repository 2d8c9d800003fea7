package ingest

import (
	"context"

	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/internal/services/photos"
	"github.com/kokotatan/swipecut/pkg/download"
	"github.com/kokotatan/swipecut/pkg/ffmpeg"
)

// SourceFile is the common local-file contract every ingestion source
// resolves to before segmenting
type SourceFile struct {
	Path     string // local path of the fetched source media
	Filename string // original display name
}

// Source produces a local source file from some input. Implementations
// must not leave partially written files visible at the returned path.
type Source interface {
	Fetch(ctx context.Context) (*SourceFile, error)
}

// Segmenter splits a local source file into ordered chunk files
type Segmenter interface {
	Split(ctx context.Context, sourcePath, outputDir string, chunkSeconds int) ([]ffmpeg.SegmentFile, error)
}

// MediaProvider resolves opaque external item ids to fetchable media
type MediaProvider interface {
	Item(ctx context.Context, itemID string) (*photos.MediaItem, error)
	DownloadURL(item *photos.MediaItem) string
}

// Downloader fetches remote bytes to a local path
type Downloader interface {
	Fetch(ctx context.Context, url, destPath string) (*download.Result, error)
}

// Service ingests a source end to end: fetch, segment, register. The
// whole operation either fully succeeds or leaves nothing behind.
type Service interface {
	Ingest(ctx context.Context, source Source, chunkSeconds int) (*models.Video, error)
}
