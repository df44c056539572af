package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/dedupe"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/storage"
)

// Dispatcher starts a processing chain for a stored file.
type Dispatcher interface {
	Dispatch(ctx context.Context, fileID uuid.UUID, category constants.FileCategory, tagIDs []string, note string) (chainID string, err error)
}

// UploadRequest is one incoming file plus its processing options.
type UploadRequest struct {
	OwnerID  uuid.UUID
	Filename string
	Category constants.FileCategory
	TagIDs   []string
	Note     string
	Content  io.Reader
}

// UploadResult reports how an upload was resolved: a fresh file with a
// dispatched chain, or a duplicate short-circuited against an existing one.
type UploadResult struct {
	File      *ent.UploadedFile
	Duplicate bool
	// ExistingEntityID is set on duplicates whose original already finished
	// extraction.
	ExistingEntityID *uuid.UUID
	ChainID          string
}

// Service is the upload intake: hash, store, dedup, dispatch.
type Service struct {
	files      repository.UploadedFileRepository
	entities   repository.EntityRepository
	store      storage.ObjectStore
	dispatcher Dispatcher
	notifier   notify.Notifier
	logger     *slog.Logger
}

func NewService(
	files repository.UploadedFileRepository,
	entities repository.EntityRepository,
	store storage.ObjectStore,
	dispatcher Dispatcher,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		files:      files,
		entities:   entities,
		store:      store,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Upload ingests one file. Identical bytes already uploaded by the same
// owner short-circuit to the existing file and entity without running a
// chain; anything else is stored, recorded and dispatched.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(req.Filename))
	if ext == "" || !constants.AllowedExt(ext) {
		return nil, fmt.Errorf("%w: unsupported file extension %q", common.ErrInvalidInput, ext)
	}
	if req.Category == "" {
		req.Category = constants.CategoryDocument
	}

	content, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty upload", common.ErrInvalidInput)
	}
	sum, hexHash := dedupe.HashBytes(content)

	// hash-addressed path keeps the put idempotent across upload retries
	storagePath := fmt.Sprintf("uploads/%s/%s.%s", req.OwnerID, hexHash, ext)
	if err := s.store.Put(ctx, storagePath, content, constants.ContentTypeForExt(ext)); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	row, dedup, err := s.files.UpsertByHash(ctx, repository.CreateFileParams{
		OwnerID:     req.OwnerID,
		ContentHash: sum,
		StoragePath: storagePath,
		Filename:    filepath.Base(req.Filename),
		FileExt:     ext,
		FileSize:    len(content),
		Category:    req.Category,
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if dedup {
		return s.resolveDuplicate(ctx, row, hexHash)
	}

	chainID, err := s.dispatcher.Dispatch(ctx, row.ID, req.Category, req.TagIDs, req.Note)
	if err != nil {
		s.logger.Error("chain dispatch failed", "file_id", row.ID, "error", err)
		if ferr := s.files.MarkFailed(ctx, row.ID, "processing could not be started"); ferr != nil {
			s.logger.Error("failed to mark file failed", "file_id", row.ID, "error", ferr)
		}
		return nil, fmt.Errorf("dispatch chain for file %s: %w", row.ID, err)
	}

	s.logger.Info("upload accepted",
		"file_id", row.ID,
		"owner_id", req.OwnerID,
		"category", req.Category,
		"chain_id", chainID,
		"size", len(content),
	)
	return &UploadResult{File: row, ChainID: chainID}, nil
}

// resolveDuplicate handles the short-circuit success path: no new chain
// runs, the upload resolves against the owner's existing file.
func (s *Service) resolveDuplicate(ctx context.Context, existing *ent.UploadedFile, hexHash string) (*UploadResult, error) {
	sig := &common.DuplicateSignal{ExistingFileID: existing.ID.String(), HashHex: hexHash}
	s.logger.Info("duplicate upload short-circuited",
		"file_id", existing.ID,
		"owner_id", existing.OwnerID,
		"signal", sig.Error(),
		"status", existing.Status,
	)

	result := &UploadResult{File: existing, Duplicate: true}
	entity, err := s.entities.FindByFileID(ctx, existing.ID)
	switch {
	case err == nil:
		result.ExistingEntityID = &entity.ID
	case ent.IsNotFound(err):
		// original still in flight or parked; nothing to link yet
	default:
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Notification{
		Kind:     notify.KindDuplicate,
		OwnerID:  existing.OwnerID,
		FileID:   existing.ID,
		EntityID: result.ExistingEntityID,
		Reason:   sig.Error(),
	})
	return result, nil
}
