package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/papervault/papervault/internal/observability/metrics"
)

// FileRef identifies a file previously uploaded to the provider. It is the
// handle passed to analyze and delete calls.
type FileRef struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// Message is one turn of conversation context carried from a previous pass.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnalyzeRequest asks the provider to analyze an uploaded file against a
// JSON schema and prompt. History optionally threads Pass-1 context into
// Pass 2.
type AnalyzeRequest struct {
	FileRef FileRef        `json:"file_ref"`
	Schema  map[string]any `json:"schema"`
	Prompt  string         `json:"prompt"`
	History []Message      `json:"history,omitempty"`
}

// Provider is the behavior classify and extract stages depend on.
type Provider interface {
	UploadFile(ctx context.Context, localPath, mimeType string) (FileRef, error)
	Analyze(ctx context.Context, req AnalyzeRequest) (json.RawMessage, error)
	DeleteFile(ctx context.Context, ref FileRef) error
}

type Config struct {
	BaseURL       string
	APIKey        string
	Model         string
	UploadTimeout time.Duration
	CallTimeout   time.Duration
}

// Client talks to the provider's file API: resumable upload, analyze by
// reference, idempotent delete. All calls run through the circuit breaker.
type Client struct {
	cfg     Config
	httpc   *http.Client
	breaker *Breaker
	metrics *metrics.PipelineMetrics
	log     *slog.Logger
}

func NewClient(cfg Config, breaker *Breaker, m *metrics.PipelineMetrics, logger *slog.Logger) *Client {
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = 120 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 120 * time.Second
	}
	return &Client{
		cfg:     cfg,
		httpc:   &http.Client{},
		breaker: breaker,
		metrics: m,
		log:     logger,
	}
}

type startSessionResponse struct {
	UploadURL string `json:"upload_url"`
}

type finalizeResponse struct {
	File FileRef `json:"file"`
}

// UploadFile runs the resumable upload handshake: start a session, PUT the
// bytes, finalize. The returned FileRef is usable for analyze calls.
func (c *Client) UploadFile(ctx context.Context, localPath, mimeType string) (FileRef, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return FileRef{}, fmt.Errorf("read local file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.UploadTimeout)
	defer cancel()

	start := time.Now()
	var ref FileRef
	err = c.breaker.Do(ctx, "files.upload", func(ctx context.Context) error {
		uploadURL, err := c.startSession(ctx, filepath.Base(localPath), mimeType, len(data))
		if err != nil {
			return err
		}
		if err := c.putBytes(ctx, uploadURL, data, mimeType); err != nil {
			return err
		}
		ref, err = c.finalize(ctx, uploadURL)
		return err
	})
	c.metrics.ProviderCall("files.upload", time.Since(start), err)
	if err != nil {
		c.log.Error("provider.upload.failed", "path", localPath, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return FileRef{}, classifyProviderError("upload file", err)
	}

	c.log.Info("provider.upload.ok", "path", localPath, "file_ref", ref.Name,
		"bytes", len(data), "elapsed_ms", time.Since(start).Milliseconds())
	return ref, nil
}

func (c *Client) startSession(ctx context.Context, displayName, mimeType string, size int) (string, error) {
	body := map[string]any{
		"file": map[string]any{
			"display_name": displayName,
			"mime_type":    mimeType,
			"size_bytes":   size,
		},
	}
	raw, err := c.post(ctx, c.endpoint("/v1/files:start"), body)
	if err != nil {
		return "", err
	}
	var resp startSessionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode start session response: %w", err)
	}
	if resp.UploadURL == "" {
		return "", fmt.Errorf("start session returned no upload url")
	}
	return resp.UploadURL, nil
}

func (c *Client) putBytes(ctx context.Context, uploadURL string, data []byte, mimeType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)
	req.ContentLength = int64(len(data))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("put bytes: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return newHTTPStatusError("put bytes", resp)
	}
	return nil
}

func (c *Client) finalize(ctx context.Context, uploadURL string) (FileRef, error) {
	raw, err := c.post(ctx, uploadURL+"?finalize=true", map[string]any{})
	if err != nil {
		return FileRef{}, err
	}
	var resp finalizeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return FileRef{}, fmt.Errorf("decode finalize response: %w", err)
	}
	if resp.File.Name == "" {
		return FileRef{}, fmt.Errorf("finalize returned no file reference")
	}
	return resp.File, nil
}

type analyzeResponse struct {
	Data json.RawMessage `json:"data"`
}

// Analyze submits an analyze-by-reference call and returns the payload
// found under the response's data key.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	body := map[string]any{
		"file_ref": req.FileRef,
		"schema":   req.Schema,
		"prompt":   req.Prompt,
	}
	if len(req.History) > 0 {
		body["history"] = req.History
	}

	start := time.Now()
	var raw []byte
	err := c.breaker.Do(ctx, "models.analyze", func(ctx context.Context) error {
		var err error
		raw, err = c.post(ctx, c.endpoint("/v1/models/"+c.cfg.Model+":analyze"), body)
		return err
	})
	c.metrics.ProviderCall("models.analyze", time.Since(start), err)
	if err != nil {
		c.log.Error("provider.analyze.failed", "file_ref", req.FileRef.Name, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, classifyProviderError("analyze", err)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode analyze response: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("analyze response missing data payload")
	}

	c.log.Info("provider.analyze.ok", "file_ref", req.FileRef.Name,
		"payload_bytes", len(resp.Data), "elapsed_ms", time.Since(start).Milliseconds())
	return resp.Data, nil
}

// DeleteFile removes an uploaded file from the provider. A 404 counts as
// success: the file is gone either way.
func (c *Client) DeleteFile(ctx context.Context, ref FileRef) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	err := c.breaker.Do(ctx, "files.delete", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/v1/"+ref.Name), nil)
		if err != nil {
			return fmt.Errorf("build delete request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.httpc.Do(req)
		if err != nil {
			return fmt.Errorf("delete file: %w", err)
		}
		defer drainAndClose(resp.Body)

		if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return newHTTPStatusError("delete file", resp)
	})
	c.metrics.ProviderCall("files.delete", time.Since(start), err)
	if err != nil {
		return classifyProviderError("delete file", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer drainAndClose(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{
			Operation:  "post " + url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func newHTTPStatusError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &HTTPStatusError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(raw)),
	}
}
