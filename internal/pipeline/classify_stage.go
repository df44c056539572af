package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/classify"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/repository"
)

// WorkfileManager is the slice of the worker file manager the stages use.
type WorkfileManager interface {
	EnsureLocalFile(ctx context.Context, remotePath, fileID, ext, existingLocalPath string) (string, error)
	ProcessWithCleanup(ctx context.Context, remotePath, fileID, ext string, fn func(localPath string) error) error
	Remove(localPath string)
}

// ClassifyStage is Pass 1: materialize the file, upload it to the
// provider once, classify, and park anything that is not confidently
// typed.
type ClassifyStage struct {
	workfiles      WorkfileManager
	provider       ai.Provider
	classifier     *classify.Classifier
	files          repository.UploadedFileRepository
	analyses       repository.AnalysisRepository
	validThreshold float32
	logger         *slog.Logger
}

func NewClassifyStage(
	workfiles WorkfileManager,
	provider ai.Provider,
	classifier *classify.Classifier,
	files repository.UploadedFileRepository,
	analyses repository.AnalysisRepository,
	validThreshold float32,
	logger *slog.Logger,
) *ClassifyStage {
	if validThreshold <= 0 {
		validThreshold = classify.DefaultValidThreshold
	}
	return &ClassifyStage{
		workfiles:      workfiles,
		provider:       provider,
		classifier:     classifier,
		files:          files,
		analyses:       analyses,
		validThreshold: validThreshold,
		logger:         logger,
	}
}

func (s *ClassifyStage) Name() string { return constants.StageClassify }

func (s *ClassifyStage) Run(ctx context.Context, meta *chain.Metadata) error {
	if err := s.files.MarkProcessing(ctx, meta.FileID); err != nil {
		return common.NewTransientError("mark file processing", err)
	}

	localPath, err := s.workfiles.EnsureLocalFile(ctx, meta.StoragePath, meta.FileID.String(), meta.FileExt, meta.LocalPath)
	if err != nil {
		return err
	}
	meta.LocalPath = localPath

	// one provider upload per chain; retries and later stages reuse the ref
	if meta.ProviderFile == nil {
		ref, err := s.provider.UploadFile(ctx, localPath, constants.ContentTypeForExt(meta.FileExt))
		if err != nil {
			return err
		}
		meta.ProviderFile = &ref
	}

	result, err := s.classifier.Classify(ctx, *meta.ProviderFile, classify.Hints{
		Filename:       filepath.Base(meta.StoragePath),
		UploadCategory: string(meta.Category),
	})
	if err != nil {
		s.record(ctx, meta, result, constants.OutcomeProviderError, err.Error())
		return err
	}
	meta.Classification = &result

	switch {
	case result.Type == constants.TypeUnknown:
		s.record(ctx, meta, result, constants.OutcomeUnknownType, result.Reasoning)
		return &common.PipelineError{
			Code:    common.CodeUnsupportedType,
			Message: "document type could not be determined",
		}
	case !result.IsValid(s.validThreshold):
		s.record(ctx, meta, result, constants.OutcomeLowConfidence, result.Reasoning)
		return &common.PipelineError{
			Code: common.CodeUnsupportedType,
			Message: fmt.Sprintf("classification confidence %.2f below %.2f",
				result.Confidence, s.validThreshold),
		}
	}

	s.record(ctx, meta, result, constants.OutcomeOK, "")
	return nil
}

func (s *ClassifyStage) record(ctx context.Context, meta *chain.Metadata, result classify.Result, outcome constants.AnalysisOutcome, detail string) {
	if err := s.analyses.Record(ctx, repository.RecordParams{
		FileID:     meta.FileID,
		ChainID:    meta.ChainID,
		Stage:      constants.StageClassify,
		DocType:    result.Type,
		Confidence: result.Confidence,
		Outcome:    outcome,
		Detail:     detail,
	}); err != nil {
		s.logger.Warn("classification history write failed", "chain_id", meta.ChainID, "error", err)
	}
}
