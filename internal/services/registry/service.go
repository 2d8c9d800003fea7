package registry

import (
	"context"
	"errors"
	"sync"

	"github.com/kokotatan/swipecut/internal/models"
	apperrors "github.com/kokotatan/swipecut/pkg/errors"
	"gorm.io/gorm"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository

	// Per-video exclusive sections for mutating operations, so the
	// lowest-index-pending scan and the progress counts always observe a
	// consistent snapshot
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewService creates a new registry service
func NewService(repo Repository) Service {
	return &ServiceImpl{
		repo:  repo,
		locks: make(map[uint]*sync.Mutex),
	}
}

// videoLock returns the mutex guarding mutations of one video's segments
func (s *ServiceImpl) videoLock(videoID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[videoID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[videoID] = lock
	}
	return lock
}

// CreateVideo atomically registers a video and its ordered segment list.
// No lock is held while the caller fetches or splits media; the video
// becomes visible only at this commit point.
func (s *ServiceImpl) CreateVideo(ctx context.Context, params CreateVideoParams) (*models.Video, error) {
	if params.SourceFilename == "" {
		return nil, apperrors.ValidationError("source_filename", "must not be empty")
	}
	if params.ChunkSeconds <= 0 {
		return nil, apperrors.InvalidDuration(params.ChunkSeconds)
	}

	video := &models.Video{
		SourceFilename: params.SourceFilename,
		OriginalPath:   params.OriginalPath,
		ChunkSeconds:   params.ChunkSeconds,
	}

	segments := make([]models.Segment, len(params.Segments))
	for i, sp := range params.Segments {
		segments[i] = models.Segment{
			Idx:      i,
			Path:     sp.Path,
			StartSec: sp.StartSec,
			EndSec:   sp.EndSec,
			Decision: models.DecisionPending,
		}
	}

	if err := s.repo.CreateVideoWithSegments(ctx, video, segments); err != nil {
		return nil, apperrors.DatabaseError("create video", err)
	}

	return video, nil
}

func (s *ServiceImpl) GetVideo(ctx context.Context, videoUUID string) (*models.Video, error) {
	return s.repo.GetVideoByUUID(ctx, videoUUID)
}

func (s *ServiceImpl) GetSegment(ctx context.Context, segmentUUID string) (*models.Segment, error) {
	return s.repo.GetSegmentByUUID(ctx, segmentUUID)
}

// UpdateDecision records a keep/drop decision for a segment. Values
// outside {keep, drop} are rejected without touching state; re-applying
// the current decision is a no-op success.
func (s *ServiceImpl) UpdateDecision(ctx context.Context, segmentUUID, decision string) (*models.Segment, error) {
	if !models.ValidDecision(decision) {
		return nil, apperrors.InvalidDecision(decision)
	}

	segment, err := s.repo.GetSegmentByUUID(ctx, segmentUUID)
	if err != nil {
		return nil, err
	}

	lock := s.videoLock(segment.VideoID)
	lock.Lock()
	defer lock.Unlock()

	if segment.Decision == decision {
		return segment, nil
	}

	if err := s.repo.UpdateSegmentDecision(ctx, segment.ID, decision); err != nil {
		return nil, err
	}

	segment.Decision = decision
	return segment, nil
}

// UpdateName sets the reviewer-supplied name for a segment. Naming is
// permitted regardless of the segment's decision; only export filters on
// decision = keep.
func (s *ServiceImpl) UpdateName(ctx context.Context, segmentUUID, name string) (*models.Segment, error) {
	segment, err := s.repo.GetSegmentByUUID(ctx, segmentUUID)
	if err != nil {
		return nil, err
	}

	lock := s.videoLock(segment.VideoID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.UpdateSegmentName(ctx, segment.ID, name); err != nil {
		return nil, err
	}

	segment.Name = &name
	return segment, nil
}

// NextPending returns the lowest-indexed pending segment of the video, or
// done=true when every segment has been decided. No cursor position is
// stored; the result is derived from current state on every call.
func (s *ServiceImpl) NextPending(ctx context.Context, videoUUID string) (*models.Segment, bool, error) {
	video, err := s.repo.GetVideoByUUID(ctx, videoUUID)
	if err != nil {
		return nil, false, err
	}

	segment, err := s.repo.FirstPendingSegment(ctx, video.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, true, nil
		}
		return nil, false, apperrors.DatabaseError("next pending segment", err)
	}

	return segment, false, nil
}

// Progress recomputes the decision counts from current segment state
func (s *ServiceImpl) Progress(ctx context.Context, videoUUID string) (*models.Progress, error) {
	video, err := s.repo.GetVideoByUUID(ctx, videoUUID)
	if err != nil {
		return nil, err
	}

	progress, err := s.repo.CountDecisions(ctx, video.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("progress", err)
	}
	return progress, nil
}
