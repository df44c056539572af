package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/storage"
)

// FinalizeStage persists the extracted entity (guarded against chains
// racing on the same file), archives the original alongside the upload
// area, and reclaims the working copies: the provider file and the local
// one. Object storage keeps the original.
type FinalizeStage struct {
	entities  repository.EntityRepository
	files     repository.UploadedFileRepository
	store     storage.ObjectStore
	provider  ai.Provider
	workfiles WorkfileManager
	logger    *slog.Logger
}

func NewFinalizeStage(
	entities repository.EntityRepository,
	files repository.UploadedFileRepository,
	store storage.ObjectStore,
	provider ai.Provider,
	workfiles WorkfileManager,
	logger *slog.Logger,
) *FinalizeStage {
	return &FinalizeStage{
		entities:  entities,
		files:     files,
		store:     store,
		provider:  provider,
		workfiles: workfiles,
		logger:    logger,
	}
}

func (s *FinalizeStage) Name() string { return constants.StageFinalize }

func (s *FinalizeStage) Run(ctx context.Context, meta *chain.Metadata) error {
	result := meta.Extraction
	if result == nil {
		return common.NewInternalError("finalize stage reached without extraction result", nil)
	}

	entity, created, err := s.entities.CreateFromExtraction(ctx, &repository.CreateEntityRequest{
		OwnerID: meta.OwnerID,
		FileID:  meta.FileID,
		Result:  result,
	})
	if err != nil {
		return common.NewTransientError("persist entity", err)
	}
	meta.EntityID = &entity.ID
	if !created {
		s.logger.Info("entity already existed, extraction discarded",
			"chain_id", meta.ChainID, "file_id", meta.FileID, "entity_id", entity.ID)
	}

	s.archive(ctx, meta)

	// cleanup is best-effort on every path; a stray provider or local file
	// is hygiene, not correctness
	if meta.ProviderFile != nil {
		if err := s.provider.DeleteFile(ctx, *meta.ProviderFile); err != nil {
			s.logger.Warn("provider file cleanup failed",
				"chain_id", meta.ChainID, "ref", meta.ProviderFile.Name, "error", err)
		} else {
			meta.ProviderFile = nil
		}
	}
	if meta.LocalPath != "" {
		s.workfiles.Remove(meta.LocalPath)
		meta.LocalPath = ""
	}

	s.logger.Info("entity finalized",
		"chain_id", meta.ChainID,
		"file_id", meta.FileID,
		"entity_id", entity.ID,
		"doc_type", result.Type,
		"created", created,
	)
	return nil
}

// archive copies the original into the archive prefix and records the
// path on the file row. Best effort: the upload-area object stays
// authoritative whether or not the copy lands.
func (s *FinalizeStage) archive(ctx context.Context, meta *chain.Metadata) {
	archivePath := "archive/" + strings.TrimPrefix(meta.StoragePath, "uploads/")

	rc, err := s.store.Get(ctx, meta.StoragePath)
	if err != nil {
		s.logger.Warn("archive skipped, original unreadable",
			"chain_id", meta.ChainID, "path", meta.StoragePath, "error", err)
		return
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		s.logger.Warn("archive skipped, original unreadable",
			"chain_id", meta.ChainID, "path", meta.StoragePath, "error", err)
		return
	}
	if err := s.store.Put(ctx, archivePath, data, constants.ContentTypeForExt(meta.FileExt)); err != nil {
		s.logger.Warn("archive copy failed",
			"chain_id", meta.ChainID, "path", archivePath, "error", err)
		return
	}
	if err := s.files.SetArchivePath(ctx, meta.FileID, archivePath); err != nil {
		s.logger.Warn("archive path not recorded",
			"chain_id", meta.ChainID, "file_id", meta.FileID, "error", err)
	}
}
