package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/ingest"
	"github.com/papervault/papervault/internal/observability/metrics"
	"github.com/papervault/papervault/internal/repository"
)

// Ingestor accepts uploads; implemented by ingest.Service.
type Ingestor interface {
	Upload(ctx context.Context, req ingest.UploadRequest) (*ingest.UploadResult, error)
}

// Pipeline is the orchestrator surface the gateway exposes.
type Pipeline interface {
	Restart(ctx context.Context, fileID uuid.UUID, chainID string) (string, error)
	Progress(ctx context.Context, chainID string) (int, error)
}

// Handler serves the intake and read API.
type Handler struct {
	ingestor Ingestor
	pipeline Pipeline
	files    repository.UploadedFileRepository
	analyses repository.AnalysisRepository
	metrics  *metrics.PipelineMetrics
	logger   *slog.Logger
}

func NewHandler(
	ingestor Ingestor,
	pipeline Pipeline,
	files repository.UploadedFileRepository,
	analyses repository.AnalysisRepository,
	m *metrics.PipelineMetrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		ingestor: ingestor,
		pipeline: pipeline,
		files:    files,
		analyses: analyses,
		metrics:  m,
		logger:   logger,
	}
}

// UploadFile handles POST /v1/files: multipart upload plus dispatch.
func (h *Handler) UploadFile(c *gin.Context) {
	ownerID, err := uuid.Parse(c.PostForm("owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid owner_id required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()

	category := constants.FileCategory(c.DefaultPostForm("category", string(constants.CategoryDocument)))
	if category != constants.CategoryReceipt && category != constants.CategoryDocument {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be receipt or document"})
		return
	}

	result, err := h.ingestor.Upload(c.Request.Context(), ingest.UploadRequest{
		OwnerID:  ownerID,
		Filename: fileHeader.Filename,
		Category: category,
		TagIDs:   c.PostFormArray("tag_ids"),
		Note:     c.PostForm("note"),
		Content:  f,
	})
	if errors.Is(err, common.ErrInvalidInput) {
		h.metrics.UploadResolved("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("upload failed", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	if result.Duplicate {
		h.metrics.UploadResolved("duplicate")
		resp := gin.H{
			"file_id":   result.File.ID,
			"status":    result.File.Status,
			"duplicate": true,
		}
		if result.ExistingEntityID != nil {
			resp["entity_id"] = *result.ExistingEntityID
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	h.metrics.UploadResolved("accepted")
	c.JSON(http.StatusAccepted, gin.H{
		"file_id":   result.File.ID,
		"chain_id":  result.ChainID,
		"status":    result.File.Status,
		"duplicate": false,
	})
}

// GetFile handles GET /v1/files/:file_id: status for external polling.
func (h *Handler) GetFile(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid file_id required"})
		return
	}

	file, err := h.files.GetByID(c.Request.Context(), fileID)
	if ent.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	resp := gin.H{
		"file_id":     file.ID,
		"filename":    file.Filename,
		"category":    file.Category,
		"status":      file.Status,
		"uploaded_at": file.UploadedAt,
	}
	if file.ErrorMessage != nil {
		resp["error_message"] = *file.ErrorMessage
	}
	c.JSON(http.StatusOK, resp)
}

// GetProgress handles GET /v1/chains/:chain_id/progress.
func (h *Handler) GetProgress(c *gin.Context) {
	chainID := c.Param("chain_id")
	progress, err := h.pipeline.Progress(c.Request.Context(), chainID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "progress lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chain_id": chainID, "progress": progress})
}

type restartRequest struct {
	ChainID string `json:"chain_id"`
}

// RestartChain handles POST /v1/files/:file_id/restart.
func (h *Handler) RestartChain(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid file_id required"})
		return
	}
	var req restartRequest
	_ = c.ShouldBindJSON(&req)

	chainID, err := h.pipeline.Restart(c.Request.Context(), fileID, req.ChainID)
	if ent.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if err != nil {
		h.logger.Error("restart failed", "file_id", fileID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "restart failed"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"file_id": fileID, "chain_id": chainID})
}

// GetClassificationStats handles GET /v1/analytics/classifications.
func (h *Handler) GetClassificationStats(c *gin.Context) {
	stats, err := h.analyses.ClassificationStats(c.Request.Context(), sinceParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetValidationFailures handles GET /v1/analytics/validation-failures.
func (h *Handler) GetValidationFailures(c *gin.Context) {
	rates, err := h.analyses.ValidationFailuresByType(c.Request.Context(), sinceParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": rates})
}

func sinceParam(c *gin.Context) time.Time {
	hours, err := strconv.Atoi(c.DefaultQuery("since_hours", "168"))
	if err != nil || hours <= 0 {
		hours = 168
	}
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}
