package ffmpeg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSegments(t *testing.T) {
	tests := []struct {
		name         string
		duration     float64
		chunkSeconds int
		expected     []span
	}{
		{
			name:         "exact multiple",
			duration:     180,
			chunkSeconds: 60,
			expected: []span{
				{start: 0, end: 60},
				{start: 60, end: 120},
				{start: 120, end: 180},
			},
		},
		{
			name:         "final segment shorter",
			duration:     150,
			chunkSeconds: 60,
			expected: []span{
				{start: 0, end: 60},
				{start: 60, end: 120},
				{start: 120, end: 150},
			},
		},
		{
			name:         "source shorter than one chunk",
			duration:     42.5,
			chunkSeconds: 60,
			expected: []span{
				{start: 0, end: 42.5},
			},
		},
		{
			name:         "zero duration",
			duration:     0,
			chunkSeconds: 60,
			expected:     nil,
		},
		{
			name:         "invalid chunk",
			duration:     120,
			chunkSeconds: 0,
			expected:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := planSegments(tt.duration, tt.chunkSeconds)
			require.Len(t, spans, len(tt.expected))
			for i, expected := range tt.expected {
				assert.InDelta(t, expected.start, spans[i].start, 0.001)
				assert.InDelta(t, expected.end, spans[i].end, 0.001)
			}
		})
	}
}

func TestPlanSegmentsDeterministic(t *testing.T) {
	first := planSegments(3600.7, 60)
	second := planSegments(3600.7, 60)

	require.Equal(t, first, second)
	assert.Len(t, first, 61)

	// Segments cover the source exactly with no gaps
	for i := 1; i < len(first); i++ {
		assert.Equal(t, first[i-1].end, first[i].start)
	}
	assert.Equal(t, 3600.7, first[len(first)-1].end)
}

func TestSplitRejectsInvalidChunkDuration(t *testing.T) {
	splitter := New("ffmpeg", "ffprobe", time.Minute)

	tests := []int{0, -1, -60}
	for _, chunkSeconds := range tests {
		_, err := splitter.Split(context.Background(), "input.mp4", t.TempDir(), chunkSeconds)
		assert.ErrorIs(t, err, ErrInvalidChunkDuration)
	}
}

func TestParseMetadata(t *testing.T) {
	output := &ffprobeOutput{}
	output.Format.Duration = "125.5"
	output.Format.Size = "1048576"
	output.Format.FormatName = "mov,mp4,m4a"
	output.Streams = []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Duration  string `json:"duration"`
	}{
		{CodecType: "audio", CodecName: "aac"},
		{CodecType: "video", CodecName: "h264", Width: 1920, Height: 1080},
	}

	metadata, err := parseMetadata(output, "test.mp4")
	require.NoError(t, err)

	assert.Equal(t, 125.5, metadata.Duration)
	assert.Equal(t, int64(1048576), metadata.Size)
	assert.Equal(t, "h264", metadata.Codec)
	assert.Equal(t, 1920, metadata.Width)
	assert.Equal(t, 1080, metadata.Height)
}

func TestParseMetadataNoDuration(t *testing.T) {
	output := &ffprobeOutput{}
	output.Format.FormatName = "mov,mp4,m4a"

	_, err := parseMetadata(output, "test.mp4")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}
