package types

import (
	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/internal/services/photos"
)

// ToSegment maps a segment model to its API representation
func ToSegment(segment *models.Segment) Segment {
	s := Segment{
		ID:       segment.UUID,
		Index:    segment.Idx,
		StartSec: segment.StartSec,
		EndSec:   segment.EndSec,
		Decision: segment.Decision,
	}
	if segment.Name != nil {
		s.Name = *segment.Name
	}
	return s
}

// ToVideoResponse maps a freshly ingested video to its API representation
func ToVideoResponse(video *models.Video) VideoResponse {
	return VideoResponse{
		BaseResponse: BaseResponse{Status: StatusOK},
		VideoID:      video.UUID,
		Filename:     video.SourceFilename,
		ChunkSeconds: video.ChunkSeconds,
		SegmentCount: len(video.Segments),
	}
}

// ToProgressResponse maps decision counts to their API representation
func ToProgressResponse(progress *models.Progress) ProgressResponse {
	return ProgressResponse{
		BaseResponse: BaseResponse{Status: StatusOK},
		Total:        progress.Total,
		Kept:         progress.Kept,
		Dropped:      progress.Dropped,
		Pending:      progress.Pending,
	}
}

// ToPhotoItems maps external library items to their API representation
func ToPhotoItems(items []photos.MediaItem) []PhotoItem {
	result := make([]PhotoItem, len(items))
	for i, item := range items {
		result[i] = PhotoItem{
			ID:           item.ID,
			Filename:     item.Filename,
			MimeType:     item.MimeType,
			CreationTime: item.MediaMetadata.CreationTime,
		}
	}
	return result
}
