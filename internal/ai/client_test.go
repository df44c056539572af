package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/papervault/papervault/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, NewBreaker(DefaultBreakerConfig()), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return client, srv
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadFileResumableFlow(t *testing.T) {
	var gotBytes []byte
	mux := http.NewServeMux()
	var base string
	mux.HandleFunc("POST /v1/files:start", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			File struct {
				DisplayName string `json:"display_name"`
				MimeType    string `json:"mime_type"`
				SizeBytes   int    `json:"size_bytes"`
			} `json:"file"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode start body: %v", err)
		}
		if body.File.DisplayName != "doc.pdf" || body.File.SizeBytes != 9 {
			t.Errorf("unexpected session metadata: %+v", body.File)
		}
		json.NewEncoder(w).Encode(map[string]string{"upload_url": base + "/upload/session-1"})
	})
	mux.HandleFunc("PUT /upload/session-1", func(w http.ResponseWriter, r *http.Request) {
		gotBytes, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /upload/session-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"file": map[string]string{"name": "files/abc123", "uri": "provider://files/abc123"},
		})
	})

	client, srv := newTestClient(t, mux)
	base = srv.URL

	ref, err := client.UploadFile(context.Background(), writeTempFile(t, "pdf-bytes"), "application/pdf")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if ref.Name != "files/abc123" {
		t.Fatalf("ref.Name = %q", ref.Name)
	}
	if string(gotBytes) != "pdf-bytes" {
		t.Fatalf("uploaded bytes = %q", gotBytes)
	}
}

func TestAnalyzeReturnsDataPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/models/test-model:analyze", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode analyze body: %v", err)
		}
		if _, ok := body["schema"]; !ok {
			t.Error("analyze request missing schema")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"type": "receipt", "confidence": 0.92},
		})
	})

	client, _ := newTestClient(t, mux)

	data, err := client.Analyze(context.Background(), AnalyzeRequest{
		FileRef: FileRef{Name: "files/abc123"},
		Schema:  map[string]any{"type": "object"},
		Prompt:  "classify this",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	var decoded struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if decoded.Type != "receipt" || decoded.Confidence != 0.92 {
		t.Fatalf("data = %+v", decoded)
	}
}

func TestAnalyzeServerErrorIsRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))

	_, err := client.Analyze(context.Background(), AnalyzeRequest{FileRef: FileRef{Name: "f"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !common.IsRetryable(err) {
		t.Fatalf("5xx should be retryable, got %v", err)
	}
	if common.CodeOf(err) != common.CodeProviderUnavailable {
		t.Fatalf("code = %s", common.CodeOf(err))
	}
}

func TestAnalyzeBadRequestIsTerminal(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "schema too deep", http.StatusBadRequest)
	}))

	_, err := client.Analyze(context.Background(), AnalyzeRequest{FileRef: FileRef{Name: "f"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if common.IsRetryable(err) {
		t.Fatalf("4xx must not be retryable, got %v", err)
	}
}

func TestDeleteFileTreats404AsSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	if err := client.DeleteFile(context.Background(), FileRef{Name: "files/gone"}); err != nil {
		t.Fatalf("DeleteFile on 404: %v", err)
	}
}
