package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	apperrors "github.com/kokotatan/swipecut/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	providerName   = "photos"
	scopeReadonly  = "https://www.googleapis.com/auth/photoslibrary.readonly"
	defaultBaseURL = "https://photoslibrary.googleapis.com/v1"
)

// googleEndpoint mirrors the provider's fixed OAuth endpoints
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// Config holds configuration for the photo library client
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenPath    string
	BaseURL      string
	Timeout      time.Duration
}

// Client talks to the external photo library API. Authorization state is a
// token file the user obtains by completing the OAuth flow out-of-band;
// every API call fails with an authentication error while it is absent.
type Client struct {
	oauth     *oauth2.Config
	tokenPath string
	baseURL   string
	timeout   time.Duration

	mu    sync.Mutex
	token *oauth2.Token
}

// NewClient creates a new photo library client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     googleEndpoint,
			Scopes:       []string{scopeReadonly},
			RedirectURL:  cfg.RedirectURL,
		},
		tokenPath: cfg.TokenPath,
		baseURL:   cfg.BaseURL,
		timeout:   cfg.Timeout,
	}
}

// AuthURL returns the consent URL the user completes out-of-band
func (c *Client) AuthURL() string {
	return c.oauth.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange completes the OAuth flow with the callback code and persists
// the resulting token
func (c *Client) Exchange(ctx context.Context, code string) error {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return apperrors.RemoteFetch(providerName, fmt.Errorf("exchanging code: %w", err))
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return c.saveToken(token)
}

// IsAuthenticated reports whether a stored authorization exists
func (c *Client) IsAuthenticated() bool {
	_, err := c.currentToken()
	return err == nil
}

// currentToken returns the cached or persisted token
func (c *Client) currentToken() (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil {
		return c.token, nil
	}

	data, err := os.ReadFile(c.tokenPath)
	if err != nil {
		return nil, apperrors.Unauthorized(providerName).WithCause(err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, apperrors.Unauthorized(providerName).WithCause(err)
	}

	c.token = &token
	return c.token, nil
}

// saveToken persists the token for later sessions
func (c *Client) saveToken(token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(c.tokenPath, data, 0600); err != nil {
		return apperrors.StorageError("write token", err)
	}
	return nil
}

// HTTPClient returns an http client that attaches and refreshes the stored
// authorization, failing with an authentication error when it is absent
func (c *Client) HTTPClient(ctx context.Context) (*http.Client, error) {
	token, err := c.currentToken()
	if err != nil {
		return nil, err
	}

	if !token.Valid() && token.RefreshToken == "" {
		return nil, apperrors.Unauthorized(providerName)
	}

	httpClient := c.oauth.Client(ctx, token)
	httpClient.Timeout = c.timeout
	return httpClient, nil
}

// ListVideos returns video items from the library, newest first as the
// provider orders them
func (c *Client) ListVideos(ctx context.Context, pageSize int) ([]MediaItem, error) {
	if pageSize <= 0 {
		pageSize = 25
	}

	body, err := json.Marshal(searchRequest{
		Filters: searchFilters{
			MediaTypeFilter: mediaTypeFilter{MediaTypes: []string{"VIDEO"}},
		},
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	var result searchResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/mediaItems:search", body, &result); err != nil {
		return nil, err
	}
	return result.MediaItems, nil
}

// Item fetches the metadata for one media item by its opaque id
func (c *Client) Item(ctx context.Context, itemID string) (*MediaItem, error) {
	if itemID == "" {
		return nil, apperrors.ValidationError("item_id", "must not be empty")
	}

	var item MediaItem
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/mediaItems/"+itemID, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DownloadURL returns the byte-retrieval URL for a video item. The =dv
// suffix selects the video bytes rather than a thumbnail.
func (c *Client) DownloadURL(item *MediaItem) string {
	return item.BaseURL + "=dv"
}

// doJSON performs one authorized API request and decodes the response
func (c *Client) doJSON(ctx context.Context, method, url string, body []byte, result interface{}) error {
	httpClient, err := c.HTTPClient(ctx)
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return apperrors.RemoteFetch(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperrors.Unauthorized(providerName).WithDetail("status", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return apperrors.RemoteFetch(providerName, fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return apperrors.RemoteFetch(providerName, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
