package videos

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
	"github.com/kokotatan/swipecut/internal/database"
	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/internal/services/export"
	"github.com/kokotatan/swipecut/internal/services/ingest"
	"github.com/kokotatan/swipecut/internal/services/registry"
	"github.com/kokotatan/swipecut/pkg/ffmpeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSegmenter writes placeholder segment files instead of running ffmpeg
type fakeSegmenter struct {
	segmentCount int
}

func (f *fakeSegmenter) Split(ctx context.Context, sourcePath, outputDir string, chunkSeconds int) ([]ffmpeg.SegmentFile, error) {
	segments := make([]ffmpeg.SegmentFile, f.segmentCount)
	for i := range segments {
		path := filepath.Join(outputDir, "segment_"+string(rune('0'+i))+".mp4")
		if err := os.WriteFile(path, []byte("chunk"), 0644); err != nil {
			return nil, err
		}
		segments[i] = ffmpeg.SegmentFile{
			Index:    i,
			Path:     path,
			StartSec: float64(i * chunkSeconds),
			EndSec:   float64((i + 1) * chunkSeconds),
		}
	}
	return segments, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *types.Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Video{}, &models.Segment{}))

	registrySvc := registry.NewService(registry.NewRepository(db.DB))
	deps := &types.Dependencies{
		DB:                  db,
		RegistryService:     registrySvc,
		IngestService:       ingest.NewService(registrySvc, &fakeSegmenter{segmentCount: 3}, t.TempDir()),
		ExportService:       export.NewService(registrySvc, t.TempDir()),
		UploadDir:           t.TempDir(),
		DefaultChunkSeconds: 60,
	}

	passthrough := func(c *gin.Context) { c.Next() }
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/videos"), deps, passthrough, passthrough)
	return router, deps
}

// uploadVideo posts a multipart upload and returns the created video id
func uploadVideo(t *testing.T, router *gin.Engine) string {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "trip.mp4")
	require.NoError(t, err)
	part.Write([]byte("raw video bytes"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response types.VideoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "trip.mp4", response.Filename)
	assert.Equal(t, 3, response.SegmentCount)
	return response.VideoID
}

func TestPostIngest(t *testing.T) {
	router, _ := setupRouter(t)
	videoID := uploadVideo(t, router)
	assert.NotEmpty(t, videoID)
}

func TestPostIngestMissingFile(t *testing.T) {
	router, _ := setupRouter(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostIngestInvalidChunkSec(t *testing.T) {
	router, _ := setupRouter(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "trip.mp4")
	require.NoError(t, err)
	part.Write([]byte("bytes"))
	require.NoError(t, writer.WriteField("chunk_sec", "abc"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNextAndProgress(t *testing.T) {
	router, deps := setupRouter(t)
	videoID := uploadVideo(t, router)

	// First call returns segment 0
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/next", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var next types.NextSegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	require.False(t, next.Done)
	require.NotNil(t, next.Segment)
	assert.Equal(t, 0, next.Segment.Index)
	assert.Equal(t, models.DecisionPending, next.Segment.Decision)

	// Decide everything, then next reports done
	video, err := deps.RegistryService.GetVideo(context.Background(), videoID)
	require.NoError(t, err)
	for _, segment := range video.Segments {
		_, err := deps.RegistryService.UpdateDecision(context.Background(), segment.UUID, models.DecisionKeep)
		require.NoError(t, err)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/next", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.True(t, next.Done)
	assert.Nil(t, next.Segment)

	// Progress counts reflect the decisions
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/progress", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var progress types.ProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 3, progress.Kept)
	assert.Equal(t, 0, progress.Pending)
}

func TestGetNextVideoNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/missing/next", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExport(t *testing.T) {
	router, deps := setupRouter(t)
	videoID := uploadVideo(t, router)

	video, err := deps.RegistryService.GetVideo(context.Background(), videoID)
	require.NoError(t, err)
	_, err = deps.RegistryService.UpdateDecision(context.Background(), video.Segments[1].UUID, models.DecisionKeep)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/export", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status   string `json:"status"`
		Manifest struct {
			VideoID  string                 `json:"video_id"`
			Segments []models.ManifestEntry `json:"segments"`
		} `json:"manifest"`
		ManifestPath string `json:"manifest_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, videoID, response.Manifest.VideoID)
	require.Len(t, response.Manifest.Segments, 1)
	assert.Equal(t, 1, response.Manifest.Segments[0].Index)

	// The manifest file was written alongside the response
	_, err = os.Stat(response.ManifestPath)
	assert.NoError(t, err)
}

func TestGetArchive(t *testing.T) {
	router, deps := setupRouter(t)
	videoID := uploadVideo(t, router)

	video, err := deps.RegistryService.GetVideo(context.Background(), videoID)
	require.NoError(t, err)
	_, err = deps.RegistryService.UpdateDecision(context.Background(), video.Segments[0].UUID, models.DecisionKeep)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/export/archive", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), videoID)

	reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)
	assert.Equal(t, zip.Store, reader.File[0].Method)
}

func TestGetArchiveNothingKept(t *testing.T) {
	router, _ := setupRouter(t)
	videoID := uploadVideo(t, router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+videoID+"/export/archive", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
