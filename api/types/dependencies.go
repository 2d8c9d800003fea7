package types

import (
	"github.com/kokotatan/swipecut/internal/database"
	"github.com/kokotatan/swipecut/internal/services/export"
	"github.com/kokotatan/swipecut/internal/services/ingest"
	"github.com/kokotatan/swipecut/internal/services/photos"
	"github.com/kokotatan/swipecut/internal/services/registry"
	"github.com/kokotatan/swipecut/pkg/download"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	RegistryService registry.Service
	IngestService   ingest.Service
	ExportService   export.Service
	PhotosClient    *photos.Client
	Downloader      *download.Downloader

	// Handler-level settings resolved from configuration at startup
	UploadDir           string
	DefaultChunkSeconds int
	PhotosPageSize      int
}
