package ffmpeg

// VideoMetadata represents metadata extracted from a video file
type VideoMetadata struct {
	Duration float64 `json:"duration"` // Duration in seconds
	Format   string  `json:"format"`   // Container format (mov,mp4,m4a..., matroska, etc.)
	Size     int64   `json:"size"`     // File size in bytes
	Width    int     `json:"width"`    // Video width in pixels
	Height   int     `json:"height"`   // Video height in pixels
	Codec    string  `json:"codec"`    // Video codec
}

// SegmentFile describes one chunk written by Split, in temporal order
type SegmentFile struct {
	Index    int     `json:"index"`     // 0-based position in the source
	Path     string  `json:"path"`      // Location of the chunk on disk
	StartSec float64 `json:"start_sec"` // Start offset within the source
	EndSec   float64 `json:"end_sec"`   // End offset within the source
}

// span is a planned time range before any file is written
type span struct {
	start float64
	end   float64
}
