package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/kokotatan/swipecut/internal/models"
	apperrors "github.com/kokotatan/swipecut/pkg/errors"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

// Ensure GormRepository implements Repository interface
var _ Repository = (*GormRepository)(nil)

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// CreateVideoWithSegments inserts the video and all of its segments in one
// transaction, so the video is never visible partially segmented
func (r *GormRepository) CreateVideoWithSegments(ctx context.Context, video *models.Video, segments []models.Segment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return fmt.Errorf("creating video: %w", err)
		}

		for i := range segments {
			segments[i].VideoID = video.ID
			if err := tx.Create(&segments[i]).Error; err != nil {
				return fmt.Errorf("creating segment %d: %w", segments[i].Idx, err)
			}
		}

		video.Segments = segments
		return nil
	})
}

func (r *GormRepository) GetVideoByUUID(ctx context.Context, videoUUID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("idx ASC")
		}).
		Where("uuid = ?", videoUUID).
		First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("video", videoUUID)
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

func (r *GormRepository) GetSegmentByUUID(ctx context.Context, segmentUUID string) (*models.Segment, error) {
	var segment models.Segment
	if err := r.db.WithContext(ctx).
		Where("uuid = ?", segmentUUID).
		First(&segment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("segment", segmentUUID)
		}
		return nil, fmt.Errorf("getting segment: %w", err)
	}
	return &segment, nil
}

func (r *GormRepository) UpdateSegmentDecision(ctx context.Context, segmentID uint, decision string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Segment{}).
		Where("id = ?", segmentID).
		Update("decision", decision)
	if result.Error != nil {
		return fmt.Errorf("updating decision: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("segment", segmentID)
	}
	return nil
}

func (r *GormRepository) UpdateSegmentName(ctx context.Context, segmentID uint, name string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Segment{}).
		Where("id = ?", segmentID).
		Update("name", name)
	if result.Error != nil {
		return fmt.Errorf("updating name: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("segment", segmentID)
	}
	return nil
}

// FirstPendingSegment returns the lowest-indexed pending segment, or
// gorm.ErrRecordNotFound when every segment has been decided
func (r *GormRepository) FirstPendingSegment(ctx context.Context, videoID uint) (*models.Segment, error) {
	var segment models.Segment
	err := r.db.WithContext(ctx).
		Where("video_id = ? AND decision = ?", videoID, models.DecisionPending).
		Order("idx ASC").
		First(&segment).Error
	if err != nil {
		return nil, err
	}
	return &segment, nil
}

// CountDecisions recomputes the per-decision counts for a video
func (r *GormRepository) CountDecisions(ctx context.Context, videoID uint) (*models.Progress, error) {
	var rows []struct {
		Decision string
		Count    int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Segment{}).
		Select("decision, count(*) as count").
		Where("video_id = ?", videoID).
		Group("decision").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting decisions: %w", err)
	}

	progress := &models.Progress{}
	for _, row := range rows {
		switch row.Decision {
		case models.DecisionKeep:
			progress.Kept = row.Count
		case models.DecisionDrop:
			progress.Dropped = row.Count
		case models.DecisionPending:
			progress.Pending = row.Count
		}
		progress.Total += row.Count
	}
	return progress, nil
}
