package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	payload := []byte("fake video bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Write(payload)
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())
	destPath := filepath.Join(t.TempDir(), "clip.mp4")

	result, err := downloader.Fetch(context.Background(), server.URL, destPath)
	require.NoError(t, err)

	assert.Equal(t, destPath, result.FilePath)
	assert.Equal(t, "video/mp4", result.ContentType)
	assert.Equal(t, int64(len(payload)), result.ContentLength)

	data, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// No temp file left behind
	_, err = os.Stat(destPath + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestFetchRejectsNonVideoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not a video</html>"))
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())
	destPath := filepath.Join(t.TempDir(), "clip.mp4")

	_, err := downloader.Fetch(context.Background(), server.URL, destPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")

	_, err = os.Stat(destPath)
	assert.True(t, os.IsNotExist(err))
}

func TestFetchRejectsOversizedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Length", "2048")
		w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	downloader := NewDownloader(Options{
		MaxSize:       1024,
		Timeout:       time.Minute,
		ValidateVideo: true,
	})
	destPath := filepath.Join(t.TempDir(), "clip.mp4")

	_, err := downloader.Fetch(context.Background(), server.URL, destPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())
	destPath := filepath.Join(t.TempDir(), "clip.mp4")

	_, err := downloader.Fetch(context.Background(), server.URL, destPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
