package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Segment decision states
const (
	DecisionPending = "pending" // Not yet reviewed
	DecisionKeep    = "keep"    // Reviewer kept the segment
	DecisionDrop    = "drop"    // Reviewer dropped the segment
)

// ValidDecision reports whether d is a recordable reviewer decision.
// "pending" is the initial state only; a segment can never return to it.
func ValidDecision(d string) bool {
	return d == DecisionKeep || d == DecisionDrop
}

// Segment represents one fixed-duration chunk of a video
type Segment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VideoID uint   `json:"video_id" gorm:"not null;index"`
	Video   *Video `json:"-" gorm:"foreignKey:VideoID"`

	// Position within the parent's ordered sequence, 0-based, contiguous,
	// immutable after creation
	Idx int `json:"index" gorm:"column:idx;not null"`

	// Location of the segment's media bytes; never changes after creation
	Path string `json:"path" gorm:"not null;size:500"`

	// Time bounds within the source video
	StartSec float64 `json:"start_sec" gorm:"not null"`
	EndSec   float64 `json:"end_sec" gorm:"not null"`

	// One of the Decision constants above
	Decision string `json:"decision" gorm:"not null;default:pending;size:20;index"`

	// Optional reviewer-supplied label; nil means unset
	Name *string `json:"name,omitempty" gorm:"size:255"`
}

// BeforeCreate generates a UUID before creating a new segment
func (s *Segment) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.Decision == "" {
		s.Decision = DecisionPending
	}
	return nil
}

// TableName returns the table name for the Segment model
func (Segment) TableName() string {
	return "segments"
}

// DisplayName returns the reviewer-supplied name, or the deterministic
// index-based fallback used in exports
func (s *Segment) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return fmt.Sprintf("segment_%03d", s.Idx)
}

// IsPending returns true if the segment has not been reviewed yet
func (s *Segment) IsPending() bool {
	return s.Decision == DecisionPending
}

// ManifestEntry represents one kept segment in an export manifest
type ManifestEntry struct {
	SegmentID string  `json:"segment_id"`
	Index     int     `json:"index"`
	Path      string  `json:"path"`
	Name      string  `json:"name"`
	StartSec  float64 `json:"start_sec"`
	EndSec    float64 `json:"end_sec"`
}

// ToManifestEntry converts a Segment to its export representation
func (s *Segment) ToManifestEntry() ManifestEntry {
	return ManifestEntry{
		SegmentID: s.UUID,
		Index:     s.Idx,
		Path:      s.Path,
		Name:      s.DisplayName(),
		StartSec:  s.StartSec,
		EndSec:    s.EndSec,
	}
}
