package export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/internal/services/registry"
	apperrors "github.com/kokotatan/swipecut/pkg/errors"
)

// Manifest is the ordered export record of a video's kept segments
type Manifest struct {
	VideoID  string                 `json:"video_id"`
	Segments []models.ManifestEntry `json:"segments"`
}

// Service assembles exports from a video's current decision state. Every
// call is a fresh snapshot; nothing is cached across decision changes.
type Service interface {
	// Manifest returns the kept segments in ascending index order
	Manifest(ctx context.Context, videoUUID string) (*Manifest, error)

	// WriteManifestFile renders the manifest to the export directory and
	// returns the written path
	WriteManifestFile(ctx context.Context, videoUUID string) (*Manifest, string, error)

	// Archive streams a ZIP of the kept segment files to w. Entries are
	// stored uncompressed in index order under each segment's display
	// name; media bytes are never altered or re-encoded.
	Archive(ctx context.Context, videoUUID string, w io.Writer) error
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	registry  registry.Service
	exportDir string
}

// NewService creates a new export service
func NewService(registrySvc registry.Service, exportDir string) Service {
	return &ServiceImpl{
		registry:  registrySvc,
		exportDir: exportDir,
	}
}

// keptSegments returns the video's kept segments in ascending index order.
// The registry already orders segments by index, so filtering preserves it.
func (s *ServiceImpl) keptSegments(ctx context.Context, videoUUID string) (*models.Video, []models.Segment, error) {
	video, err := s.registry.GetVideo(ctx, videoUUID)
	if err != nil {
		return nil, nil, err
	}

	kept := make([]models.Segment, 0, len(video.Segments))
	for _, segment := range video.Segments {
		if segment.Decision == models.DecisionKeep {
			kept = append(kept, segment)
		}
	}
	return video, kept, nil
}

func (s *ServiceImpl) Manifest(ctx context.Context, videoUUID string) (*Manifest, error) {
	video, kept, err := s.keptSegments(ctx, videoUUID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ManifestEntry, len(kept))
	for i, segment := range kept {
		entries[i] = segment.ToManifestEntry()
	}

	return &Manifest{
		VideoID:  video.UUID,
		Segments: entries,
	}, nil
}

func (s *ServiceImpl) WriteManifestFile(ctx context.Context, videoUUID string) (*Manifest, string, error) {
	manifest, err := s.Manifest(ctx, videoUUID)
	if err != nil {
		return nil, "", err
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return nil, "", apperrors.StorageError("create export directory", err)
	}

	manifestPath := filepath.Join(s.exportDir, fmt.Sprintf("video_%s_manifest.json", manifest.VideoID))
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encoding manifest: %w", err)
	}

	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return nil, "", apperrors.StorageError("write manifest", err)
	}

	return manifest, manifestPath, nil
}

func (s *ServiceImpl) Archive(ctx context.Context, videoUUID string, w io.Writer) error {
	video, kept, err := s.keptSegments(ctx, videoUUID)
	if err != nil {
		return err
	}

	if len(kept) == 0 {
		return apperrors.NoKeptSegments(video.UUID)
	}

	archive := zip.NewWriter(w)

	for _, segment := range kept {
		if err := addStoredEntry(archive, &segment); err != nil {
			archive.Close()
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// addStoredEntry copies one segment file into the archive byte-for-byte
func addStoredEntry(archive *zip.Writer, segment *models.Segment) error {
	file, err := os.Open(segment.Path)
	if err != nil {
		return apperrors.StorageError("open segment", err).WithDetail("path", segment.Path)
	}
	defer file.Close()

	header := &zip.FileHeader{
		Name:   entryName(segment),
		Method: zip.Store, // no compression, media bytes untouched
	}

	writer, err := archive.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating archive entry: %w", err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return apperrors.StorageError("write archive entry", err).WithDetail("path", segment.Path)
	}
	return nil
}

// entryName builds the in-archive filename from the segment's display name
// and the media file's extension
func entryName(segment *models.Segment) string {
	ext := filepath.Ext(segment.Path)
	if ext == "" {
		ext = ".mp4"
	}
	return sanitizeEntryName(segment.DisplayName()) + ext
}

// sanitizeEntryName strips path separators and control characters so a
// reviewer-supplied name cannot escape the archive root
func sanitizeEntryName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		"..", "-",
		":", "-",
		"\x00", "",
	)
	name = strings.TrimSpace(replacer.Replace(name))
	if name == "" {
		name = "segment"
	}
	return name
}
