// Package httpapi provides the translation backend adapter over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.TranslationAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 120 * time.Second
	DefaultTargetExt = ".xlsx"
	DefaultRate      = 4 // requests per second
)

// uploadField is the repeated multipart field name the server expects.
const uploadField = "files[]"

// Config holds configuration for the translation backend client.
type Config struct {
	// BaseURL is the backend base URL (required).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// TargetExt is the artifact extension the server produces
	// (default: .xlsx).
	TargetExt string

	// RequestsPerSecond caps outbound requests (default: 4).
	// Watch mode can trigger frequent submissions; the limiter keeps
	// the client polite.
	RequestsPerSecond float64
}

// Client talks to the translation backend.
type Client struct {
	client    *http.Client
	baseURL   string
	targetExt string
	limiter   *rate.Limiter
}

// New creates a new translation backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("httpapi: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.TargetExt == "" {
		cfg.TargetExt = DefaultTargetExt
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRate
	}

	return &Client{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		targetExt: cfg.TargetExt,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

// SubmitBatch uploads the batch as one multipart request and decodes
// the per-file verdicts.
func (c *Client) SubmitBatch(ctx context.Context, files []driven.BatchFile) ([]domain.Verdict, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := mw.CreateFormFile(uploadField, f.Name)
		if err != nil {
			return nil, fmt.Errorf("create part for %s: %w", f.Name, err)
		}
		rc, err := f.Content.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		_, err = io.Copy(part, rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalise request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload failed: %s", errorMessage(resp))
	}

	var verdicts []domain.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdicts); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return verdicts, nil
}

// FetchArtifact retrieves a single translated artifact by name.
func (c *Client) FetchArtifact(ctx context.Context, name string) ([]byte, error) {
	return c.get(ctx, c.baseURL+"/download/"+url.PathEscape(name))
}

// FetchArchive retrieves the bulk archive of all artifacts.
func (c *Client) FetchArchive(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.baseURL+"/download-all")
}

// ArtifactName derives the server-side artifact name: the original stem
// plus a fixed "_translated" suffix and the target extension.
func (c *Client) ArtifactName(original string) string {
	return strings.TrimSuffix(original, path.Ext(original)) + "_translated" + c.targetExt
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download failed: %s", errorMessage(resp))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

// errorMessage extracts a message from a structured error body,
// falling back to the HTTP status text.
func errorMessage(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return payload.Error
		}
	}
	return resp.Status
}
