package ingest

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/internal/services/registry"
	apperrors "github.com/kokotatan/swipecut/pkg/errors"
	"github.com/kokotatan/swipecut/pkg/ffmpeg"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	registry    registry.Service
	segmenter   Segmenter
	segmentsDir string
}

// NewService creates a new ingest service
func NewService(registrySvc registry.Service, segmenter Segmenter, segmentsDir string) Service {
	return &ServiceImpl{
		registry:    registrySvc,
		segmenter:   segmenter,
		segmentsDir: segmentsDir,
	}
}

// Ingest runs fetch, split, register as one logical unit. The video and
// its segments become visible only after the registry commit; any failure
// before that point removes the partial on-disk artifacts.
func (s *ServiceImpl) Ingest(ctx context.Context, source Source, chunkSeconds int) (*models.Video, error) {
	if chunkSeconds <= 0 {
		return nil, apperrors.InvalidDuration(chunkSeconds)
	}

	sourceFile, err := source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Each ingestion gets its own segment directory so concurrent uploads
	// of the same filename cannot collide
	outputDir := filepath.Join(s.segmentsDir, uuid.New().String())
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		s.discardSource(sourceFile.Path)
		return nil, apperrors.StorageError("create segment directory", err)
	}

	segmentFiles, err := s.segmenter.Split(ctx, sourceFile.Path, outputDir, chunkSeconds)
	if err != nil {
		s.discardSource(sourceFile.Path)
		os.RemoveAll(outputDir)
		return nil, mapSplitError(sourceFile.Path, err)
	}

	params := registry.CreateVideoParams{
		SourceFilename: sourceFile.Filename,
		OriginalPath:   sourceFile.Path,
		ChunkSeconds:   chunkSeconds,
		Segments:       make([]registry.SegmentParams, len(segmentFiles)),
	}
	for i, sf := range segmentFiles {
		params.Segments[i] = registry.SegmentParams{
			Path:     sf.Path,
			StartSec: sf.StartSec,
			EndSec:   sf.EndSec,
		}
	}

	video, err := s.registry.CreateVideo(ctx, params)
	if err != nil {
		s.discardSource(sourceFile.Path)
		os.RemoveAll(outputDir)
		return nil, err
	}

	log.Printf("[INFO] Ingested %s as video %s (%d segments)", sourceFile.Filename, video.UUID, len(segmentFiles))
	return video, nil
}

// discardSource removes a fetched source file after a failed ingestion
func (s *ServiceImpl) discardSource(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] Failed to remove source file %s: %v", path, err)
	}
}

// mapSplitError translates segmenter failures into application errors
func mapSplitError(sourcePath string, err error) error {
	switch {
	case errors.Is(err, ffmpeg.ErrInvalidChunkDuration):
		return apperrors.InvalidDuration(0).WithCause(err)
	case errors.Is(err, ffmpeg.ErrUnsupportedMedia):
		return apperrors.UnsupportedMedia(sourcePath, err)
	case errors.Is(err, ffmpeg.ErrFFmpegNotFound), errors.Is(err, ffmpeg.ErrFFprobeNotFound):
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "segmenting tools unavailable")
	}

	var procErr *ffmpeg.ProcessingError
	if errors.As(err, &procErr) {
		if procErr.Operation == "probe" || strings.Contains(procErr.Stderr, "Invalid data") {
			return apperrors.UnsupportedMedia(sourcePath, err)
		}
		return apperrors.StorageError("split", err).WithDetail("path", sourcePath)
	}

	return apperrors.StorageError("split", err)
}
