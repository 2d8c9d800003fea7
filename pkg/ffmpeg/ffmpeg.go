package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Splitter wraps ffmpeg and ffprobe for deterministic chunking of a video
// into fixed-duration segments without re-encoding.
type Splitter struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new Splitter
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *Splitter {
	return &Splitter{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (s *Splitter) ValidateBinaries() error {
	if _, err := exec.LookPath(s.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, s.ffmpegPath)
	}

	if _, err := exec.LookPath(s.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, s.ffprobePath)
	}

	return nil
}

// Split partitions sourcePath into chunkSeconds-long segments written to
// outputDir, in temporal order. The final segment may be shorter than
// chunkSeconds but never longer; together the segments cover the source
// exactly. Identical inputs produce identical boundaries and count.
// Segment bytes are stream-copied, never re-encoded. On any failure the
// segments written so far are removed.
func (s *Splitter) Split(ctx context.Context, sourcePath, outputDir string, chunkSeconds int) ([]SegmentFile, error) {
	if chunkSeconds <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkDuration, chunkSeconds)
	}

	metadata, err := s.GetMetadata(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	spans := planSegments(metadata.Duration, chunkSeconds)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	ext := filepath.Ext(sourcePath)
	if ext == "" {
		ext = ".mp4"
	}

	segments := make([]SegmentFile, 0, len(spans))
	for i, sp := range spans {
		segmentPath := filepath.Join(outputDir, fmt.Sprintf("%s_segment_%03d%s", stem, i, ext))

		if err := s.cutSegment(ctx, sourcePath, segmentPath, sp); err != nil {
			removeSegmentFiles(segments)
			return nil, err
		}

		segments = append(segments, SegmentFile{
			Index:    i,
			Path:     segmentPath,
			StartSec: sp.start,
			EndSec:   sp.end,
		})
	}

	return segments, nil
}

// planSegments computes deterministic chunk boundaries: fixed steps of
// chunkSeconds from zero, with the final span clamped to the source
// duration so only the last segment may fall short.
func planSegments(duration float64, chunkSeconds int) []span {
	if duration <= 0 || chunkSeconds <= 0 {
		return nil
	}

	chunk := float64(chunkSeconds)
	spans := make([]span, 0, int(duration/chunk)+1)
	for start := 0.0; start < duration; start += chunk {
		end := start + chunk
		if end > duration {
			end = duration
		}
		spans = append(spans, span{start: start, end: end})
	}

	return spans
}

// cutSegment writes one stream-copied chunk of the source
func (s *Splitter) cutSegment(ctx context.Context, sourcePath, segmentPath string, sp span) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := []string{
		"-i", sourcePath,
		"-ss", fmt.Sprintf("%.3f", sp.start),
		"-to", fmt.Sprintf("%.3f", sp.end),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y",
		segmentPath,
	}

	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(segmentPath)
		return NewProcessingError("split", sourcePath, err, stderr.String())
	}

	return nil
}

// removeSegmentFiles cleans up partial output after a failed split
func removeSegmentFiles(segments []SegmentFile) {
	for _, seg := range segments {
		os.Remove(seg.Path)
	}
}
