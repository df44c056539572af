package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/ingest"
	"github.com/papervault/papervault/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type ingestorFake struct {
	result  *ingest.UploadResult
	err     error
	lastReq ingest.UploadRequest
}

func (f *ingestorFake) Upload(_ context.Context, req ingest.UploadRequest) (*ingest.UploadResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type pipelineFake struct {
	progress   int
	restartErr error
}

func (f *pipelineFake) Restart(_ context.Context, fileID uuid.UUID, chainID string) (string, error) {
	if f.restartErr != nil {
		return "", f.restartErr
	}
	if chainID == "" {
		chainID = "chain-new"
	}
	return chainID, nil
}

func (f *pipelineFake) Progress(context.Context, string) (int, error) {
	return f.progress, nil
}

type filesReadFake struct {
	row *ent.UploadedFile
}

func (f *filesReadFake) GetByID(_ context.Context, id uuid.UUID) (*ent.UploadedFile, error) {
	if f.row != nil && f.row.ID == id {
		return f.row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *filesReadFake) GetByOwnerAndHash(context.Context, uuid.UUID, []byte) (*ent.UploadedFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *filesReadFake) UpsertByHash(context.Context, repository.CreateFileParams) (*ent.UploadedFile, bool, error) {
	return nil, false, errors.New("not used")
}

func (f *filesReadFake) MarkProcessing(context.Context, uuid.UUID) error      { return nil }
func (f *filesReadFake) MarkCompleted(context.Context, uuid.UUID) error       { return nil }
func (f *filesReadFake) MarkFailed(context.Context, uuid.UUID, string) error  { return nil }
func (f *filesReadFake) SetArchivePath(context.Context, uuid.UUID, string) error {
	return nil
}

type analysesReadFake struct {
	stats *repository.ClassificationStats
}

func (f *analysesReadFake) Record(context.Context, repository.RecordParams) error { return nil }

func (f *analysesReadFake) ClassificationStats(context.Context, time.Time) (*repository.ClassificationStats, error) {
	return f.stats, nil
}

func (f *analysesReadFake) ValidationFailuresByType(context.Context, time.Time) ([]repository.TypeFailureRate, error) {
	return []repository.TypeFailureRate{
		{DocType: "warranty", Total: 10, ValidationFailed: 3, FailureRate: 0.3},
	}, nil
}

func newTestRouter(ing *ingestorFake, pipe *pipelineFake, files *filesReadFake) *gin.Engine {
	h := NewHandler(ing, pipe, files,
		&analysesReadFake{stats: &repository.ClassificationStats{Total: 5, UnknownType: 1, UnknownRate: 0.2}},
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return NewRouter(h)
}

func multipartUpload(t *testing.T, ownerID, category, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if ownerID != "" {
		_ = w.WriteField("owner_id", ownerID)
	}
	if category != "" {
		_ = w.WriteField("category", category)
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("pdf bytes"))
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

func TestUploadFileAccepted(t *testing.T) {
	fileID := uuid.New()
	ing := &ingestorFake{result: &ingest.UploadResult{
		File:    &ent.UploadedFile{ID: fileID, Status: string(constants.FileStatusPending)},
		ChainID: "chain-1",
	}}
	router := newTestRouter(ing, &pipelineFake{}, &filesReadFake{})

	body, contentType := multipartUpload(t, uuid.NewString(), "receipt", "receipt.pdf")
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp["chain_id"] != "chain-1" || resp["duplicate"] != false {
		t.Fatalf("resp = %v", resp)
	}
	if ing.lastReq.Category != constants.CategoryReceipt {
		t.Fatalf("category = %s", ing.lastReq.Category)
	}
}

func TestUploadFileDuplicateReturnsExisting(t *testing.T) {
	entityID := uuid.New()
	ing := &ingestorFake{result: &ingest.UploadResult{
		File:             &ent.UploadedFile{ID: uuid.New(), Status: string(constants.FileStatusCompleted)},
		Duplicate:        true,
		ExistingEntityID: &entityID,
	}}
	router := newTestRouter(ing, &pipelineFake{}, &filesReadFake{})

	body, contentType := multipartUpload(t, uuid.NewString(), "receipt", "copy.pdf")
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["duplicate"] != true || resp["entity_id"] != entityID.String() {
		t.Fatalf("resp = %v", resp)
	}
}

func TestUploadFileRequiresOwner(t *testing.T) {
	router := newTestRouter(&ingestorFake{}, &pipelineFake{}, &filesReadFake{})

	body, contentType := multipartUpload(t, "", "receipt", "receipt.pdf")
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetFileStatus(t *testing.T) {
	msg := "the original file is no longer available; please re-upload"
	row := &ent.UploadedFile{
		ID:           uuid.New(),
		Filename:     "receipt.pdf",
		Category:     string(constants.CategoryReceipt),
		Status:       string(constants.FileStatusFailed),
		ErrorMessage: &msg,
	}
	router := newTestRouter(&ingestorFake{}, &pipelineFake{}, &filesReadFake{row: row})

	req := httptest.NewRequest(http.MethodGet, "/v1/files/"+row.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != string(constants.FileStatusFailed) || resp["error_message"] != msg {
		t.Fatalf("resp = %v", resp)
	}
}

func TestGetFileNotFound(t *testing.T) {
	router := newTestRouter(&ingestorFake{}, &pipelineFake{}, &filesReadFake{})

	req := httptest.NewRequest(http.MethodGet, "/v1/files/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetProgress(t *testing.T) {
	router := newTestRouter(&ingestorFake{}, &pipelineFake{progress: 66}, &filesReadFake{})

	req := httptest.NewRequest(http.MethodGet, "/v1/chains/chain-1/progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["progress"] != float64(66) {
		t.Fatalf("resp = %v", resp)
	}
}

func TestRestartChainPreservesChainID(t *testing.T) {
	router := newTestRouter(&ingestorFake{}, &pipelineFake{}, &filesReadFake{})
	fileID := uuid.New()

	payload := bytes.NewBufferString(`{"chain_id":"chain-original"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/files/"+fileID.String()+"/restart", payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["chain_id"] != "chain-original" {
		t.Fatalf("resp = %v", resp)
	}
}

func TestClassificationStatsEndpoint(t *testing.T) {
	router := newTestRouter(&ingestorFake{}, &pipelineFake{}, &filesReadFake{})

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/classifications?since_hours=24", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats repository.ClassificationStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if stats.Total != 5 || stats.UnknownType != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}
