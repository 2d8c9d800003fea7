package types

// DecisionRequest records a keep/drop decision for a segment
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// NameRequest sets the reviewer-supplied name for a segment
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ImportRequest ingests one video from the external photo library
type ImportRequest struct {
	ItemID       string `json:"item_id" binding:"required"`
	ChunkSeconds int    `json:"chunk_seconds"`
}
