// Package client is a thin HTTP client for the gallery API, used by the
// galleryctl command. It speaks the flat success envelope the handlers emit:
// {"success":true, ...payload} on 200, {"success":false,"error":...} otherwise.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gallery-backend/internal/domains/archive"
	"gallery-backend/internal/domains/artwork"
	"gallery-backend/internal/domains/upload"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// envelope covers the response fields shared by every endpoint. Payload fields
// are decoded separately per call.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("server error: %s", env.Error)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}

// Health pings the API.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}
	return nil
}

// Login exchanges the admin password for a session token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// UploadImage pushes a base64-encoded image and returns the issued URL.
func (c *Client) UploadImage(ctx context.Context, req *upload.Request) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/upload-image", req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ListArtworks fetches every artwork record.
func (c *Client) ListArtworks(ctx context.Context) ([]*artwork.Artwork, error) {
	var out struct {
		Items []*artwork.Artwork `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/artworks", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateArtwork submits a new artwork and returns the stored record.
func (c *Client) CreateArtwork(ctx context.Context, in *artwork.Input) (*artwork.Artwork, error) {
	var out struct {
		Item *artwork.Artwork `json:"item"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/artworks", in, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// UpdateArtwork overwrites the record with exactly the fields sent.
func (c *Client) UpdateArtwork(ctx context.Context, id string, in *artwork.Input) (*artwork.Artwork, error) {
	var out struct {
		Item *artwork.Artwork `json:"item"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/artworks/"+id, in, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// DeleteArtwork removes an artwork record. Deleting an absent id succeeds.
func (c *Client) DeleteArtwork(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/artworks/"+id, nil, nil)
}

// ListArchive fetches every archive item.
func (c *Client) ListArchive(ctx context.Context) ([]*archive.Item, error) {
	var out struct {
		Items []*archive.Item `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/archive", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateArchiveItem submits a new archive entry.
func (c *Client) CreateArchiveItem(ctx context.Context, in *archive.Input) (*archive.Item, error) {
	var out struct {
		Item *archive.Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/archive", in, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// DeleteArchiveItem removes a single archive entry.
func (c *Client) DeleteArchiveItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/archive/"+id, nil, nil)
}

// ResetArchive wipes the whole archive and returns how many records went.
func (c *Client) ResetArchive(ctx context.Context) (int, error) {
	var out struct {
		DeletedCount int `json:"deletedCount"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/v1/archive", nil, &out); err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}
