package photos

// MediaItem represents one item in the external photo library. The id is
// an opaque provider value and is passed through unchanged.
type MediaItem struct {
	ID            string        `json:"id"`
	Filename      string        `json:"filename"`
	MimeType      string        `json:"mimeType"`
	BaseURL       string        `json:"baseUrl"`
	MediaMetadata MediaMetadata `json:"mediaMetadata"`
}

// MediaMetadata holds capture metadata for a media item
type MediaMetadata struct {
	CreationTime string `json:"creationTime"`
	Width        string `json:"width"`
	Height       string `json:"height"`
}

// searchRequest is the provider's media item search body
type searchRequest struct {
	Filters  searchFilters `json:"filters"`
	PageSize int           `json:"pageSize"`
}

type searchFilters struct {
	MediaTypeFilter mediaTypeFilter `json:"mediaTypeFilter"`
}

type mediaTypeFilter struct {
	MediaTypes []string `json:"mediaTypes"`
}

// searchResponse is the provider's media item search result
type searchResponse struct {
	MediaItems    []MediaItem `json:"mediaItems"`
	NextPageToken string      `json:"nextPageToken"`
}
