package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusDone  = "done"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// Segment is the API representation of one review segment
type Segment struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	Decision string  `json:"decision"`
	Name     string  `json:"name,omitempty"`
}

// VideoResponse is returned after a successful ingestion
type VideoResponse struct {
	BaseResponse
	VideoID      string `json:"video_id"`
	Filename     string `json:"filename"`
	ChunkSeconds int    `json:"chunk_seconds"`
	SegmentCount int    `json:"segment_count"`
}

// NextSegmentResponse returns the lowest-indexed undecided segment, or
// done=true with no segment once every decision is recorded
type NextSegmentResponse struct {
	BaseResponse
	Done    bool     `json:"done"`
	Segment *Segment `json:"segment,omitempty"`
}

// SegmentResponse returns one segment after a decision or rename
type SegmentResponse struct {
	BaseResponse
	Segment Segment `json:"segment"`
}

// ProgressResponse returns the live decision counts for a video
type ProgressResponse struct {
	BaseResponse
	Total   int `json:"total"`
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
	Pending int `json:"pending"`
}

// PhotoItem is the API representation of an external library video
type PhotoItem struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	CreationTime string `json:"creation_time,omitempty"`
}

// PhotoItemsResponse lists videos available in the external library
type PhotoItemsResponse struct {
	BaseResponse
	Items []PhotoItem `json:"items"`
	Count int         `json:"count"`
}

// AuthURLResponse returns the provider consent URL
type AuthURLResponse struct {
	BaseResponse
	AuthURL string `json:"auth_url"`
}
