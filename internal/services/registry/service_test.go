package registry

import (
	"context"
	"testing"

	"github.com/kokotatan/swipecut/internal/database"
	"github.com/kokotatan/swipecut/internal/models"
	apperrors "github.com/kokotatan/swipecut/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Video{}, &models.Segment{}))

	return NewService(NewRepository(db.DB))
}

func createTestVideo(t *testing.T, svc Service, segmentCount int) *models.Video {
	t.Helper()

	params := CreateVideoParams{
		SourceFilename: "vacation.mp4",
		OriginalPath:   "/data/original/vacation.mp4",
		ChunkSeconds:   60,
	}
	for i := 0; i < segmentCount; i++ {
		params.Segments = append(params.Segments, SegmentParams{
			Path:     "/data/segments/vacation_segment_00" + string(rune('0'+i)) + ".mp4",
			StartSec: float64(i * 60),
			EndSec:   float64((i + 1) * 60),
		})
	}

	video, err := svc.CreateVideo(context.Background(), params)
	require.NoError(t, err)
	return video
}

func TestCreateVideo(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	video := createTestVideo(t, svc, 3)
	assert.NotEmpty(t, video.UUID)
	require.Len(t, video.Segments, 3)

	// Segments come back pending, in temporal order
	fetched, err := svc.GetVideo(ctx, video.UUID)
	require.NoError(t, err)
	require.Len(t, fetched.Segments, 3)
	for i, segment := range fetched.Segments {
		assert.Equal(t, i, segment.Idx)
		assert.Equal(t, models.DecisionPending, segment.Decision)
		assert.NotEmpty(t, segment.UUID)
	}
}

func TestCreateVideoValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateVideo(ctx, CreateVideoParams{ChunkSeconds: 60})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = svc.CreateVideo(ctx, CreateVideoParams{SourceFilename: "a.mp4", ChunkSeconds: 0})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidDuration))

	_, err = svc.CreateVideo(ctx, CreateVideoParams{SourceFilename: "a.mp4", ChunkSeconds: -10})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidDuration))
}

func TestReviewFlow(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	video := createTestVideo(t, svc, 3)

	// Review walks segments in index order
	first, done, err := svc.NextPending(ctx, video.UUID)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 0, first.Idx)

	// Asking again without deciding returns the same segment
	again, done, err := svc.NextPending(ctx, video.UUID)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, first.UUID, again.UUID)

	_, err = svc.UpdateDecision(ctx, first.UUID, models.DecisionKeep)
	require.NoError(t, err)

	second, done, err := svc.NextPending(ctx, video.UUID)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 1, second.Idx)

	_, err = svc.UpdateDecision(ctx, second.UUID, models.DecisionDrop)
	require.NoError(t, err)

	third, done, err := svc.NextPending(ctx, video.UUID)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 2, third.Idx)

	_, err = svc.UpdateDecision(ctx, third.UUID, models.DecisionKeep)
	require.NoError(t, err)

	// Everything decided
	segment, done, err := svc.NextPending(ctx, video.UUID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, segment)

	progress, err := svc.Progress(ctx, video.UUID)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 2, progress.Kept)
	assert.Equal(t, 1, progress.Dropped)
	assert.Equal(t, 0, progress.Pending)
}

func TestUpdateDecisionIdempotent(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	video := createTestVideo(t, svc, 1)
	segmentUUID := video.Segments[0].UUID

	// Same decision twice succeeds and changes nothing further
	_, err := svc.UpdateDecision(ctx, segmentUUID, models.DecisionKeep)
	require.NoError(t, err)
	segment, err := svc.UpdateDecision(ctx, segmentUUID, models.DecisionKeep)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionKeep, segment.Decision)

	// Switching keep to drop is allowed
	segment, err = svc.UpdateDecision(ctx, segmentUUID, models.DecisionDrop)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionDrop, segment.Decision)

	progress, err := svc.Progress(ctx, video.UUID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Dropped)
	assert.Equal(t, 0, progress.Kept)
}

func TestUpdateDecisionInvalid(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	video := createTestVideo(t, svc, 1)
	segmentUUID := video.Segments[0].UUID

	for _, invalid := range []string{"maybe", "pending", "", "KEEP"} {
		_, err := svc.UpdateDecision(ctx, segmentUUID, invalid)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidDecision), "decision %q", invalid)
	}

	// Rejected decisions leave the segment untouched
	segment, err := svc.GetSegment(ctx, segmentUUID)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionPending, segment.Decision)
}

func TestUpdateName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	video := createTestVideo(t, svc, 2)

	// Naming works on pending segments
	segment, err := svc.UpdateName(ctx, video.Segments[0].UUID, "intro")
	require.NoError(t, err)
	require.NotNil(t, segment.Name)
	assert.Equal(t, "intro", *segment.Name)

	// And on decided ones
	_, err = svc.UpdateDecision(ctx, video.Segments[1].UUID, models.DecisionDrop)
	require.NoError(t, err)
	segment, err = svc.UpdateName(ctx, video.Segments[1].UUID, "outtake")
	require.NoError(t, err)
	require.NotNil(t, segment.Name)
	assert.Equal(t, "outtake", *segment.Name)

	// Renaming overwrites
	segment, err = svc.UpdateName(ctx, video.Segments[0].UUID, "cold open")
	require.NoError(t, err)
	assert.Equal(t, "cold open", *segment.Name)
}

func TestNotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.GetVideo(ctx, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, _, err = svc.NextPending(ctx, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = svc.Progress(ctx, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = svc.UpdateDecision(ctx, "missing", models.DecisionKeep)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = svc.UpdateName(ctx, "missing", "name")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
