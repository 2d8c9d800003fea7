package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video represents one ingested source video and owns its ordered segments.
// A Video row only ever exists fully segmented: ingestion commits the video
// and all of its segments in a single transaction.
type Video struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Original display name of the source media
	SourceFilename string `json:"source_filename" gorm:"not null;size:255"`

	// Location of the ingested source file on disk
	OriginalPath string `json:"original_path" gorm:"not null;size:500"`

	// Seconds per segment, fixed at ingestion time
	ChunkSeconds int `json:"chunk_seconds" gorm:"not null"`

	// Ordered segment list; order is the temporal order in the source
	Segments []Segment `json:"segments,omitempty" gorm:"foreignKey:VideoID"`
}

// BeforeCreate generates a UUID before creating a new video
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == "" {
		v.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}

// Progress holds the decision counts for one video, always recomputed
// from current segment state, never stored.
type Progress struct {
	Total   int `json:"total"`
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
	Pending int `json:"pending"`
}
