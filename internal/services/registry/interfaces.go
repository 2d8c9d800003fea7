package registry

import (
	"context"

	"github.com/kokotatan/swipecut/internal/models"
)

// Service defines the interface for the video registry and review workflow
type Service interface {
	// CreateVideo atomically registers a video together with its full
	// ordered segment list. No partial segment set is ever observable.
	CreateVideo(ctx context.Context, params CreateVideoParams) (*models.Video, error)

	// GetVideo retrieves a video with its segments by public id
	GetVideo(ctx context.Context, videoUUID string) (*models.Video, error)

	// GetSegment retrieves a segment by public id
	GetSegment(ctx context.Context, segmentUUID string) (*models.Segment, error)

	// UpdateDecision records a keep/drop decision. Re-applying the same
	// decision is a no-op success; a segment never returns to pending.
	UpdateDecision(ctx context.Context, segmentUUID, decision string) (*models.Segment, error)

	// UpdateName sets the reviewer-supplied name, regardless of decision
	UpdateName(ctx context.Context, segmentUUID, name string) (*models.Segment, error)

	// NextPending returns the lowest-indexed pending segment, or done=true
	// when none remain. Derived from current state on every call.
	NextPending(ctx context.Context, videoUUID string) (*models.Segment, bool, error)

	// Progress recomputes the decision counts for a video
	Progress(ctx context.Context, videoUUID string) (*models.Progress, error)
}

// Repository defines the persistence interface for videos and segments
type Repository interface {
	CreateVideoWithSegments(ctx context.Context, video *models.Video, segments []models.Segment) error
	GetVideoByUUID(ctx context.Context, videoUUID string) (*models.Video, error)
	GetSegmentByUUID(ctx context.Context, segmentUUID string) (*models.Segment, error)
	UpdateSegmentDecision(ctx context.Context, segmentID uint, decision string) error
	UpdateSegmentName(ctx context.Context, segmentID uint, name string) error
	FirstPendingSegment(ctx context.Context, videoID uint) (*models.Segment, error)
	CountDecisions(ctx context.Context, videoID uint) (*models.Progress, error)
}

// CreateVideoParams contains parameters for registering an ingested video
type CreateVideoParams struct {
	SourceFilename string
	OriginalPath   string
	ChunkSeconds   int
	Segments       []SegmentParams
}

// SegmentParams describes one segment file in temporal order; the index is
// assigned from the slice position
type SegmentParams struct {
	Path     string
	StartSec float64
	EndSec   float64
}
