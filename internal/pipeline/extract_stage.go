package pipeline

import (
	"context"
	"log/slog"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/extract"
	"github.com/papervault/papervault/internal/repository"
)

// ExtractStage is Pass 2: run the type-specific extractor against the
// provider file reference produced in Pass 1.
type ExtractStage struct {
	workfiles WorkfileManager
	provider  ai.Provider
	runner    *extract.Runner
	analyses  repository.AnalysisRepository
	logger    *slog.Logger
}

func NewExtractStage(
	workfiles WorkfileManager,
	provider ai.Provider,
	runner *extract.Runner,
	analyses repository.AnalysisRepository,
	logger *slog.Logger,
) *ExtractStage {
	return &ExtractStage{
		workfiles: workfiles,
		provider:  provider,
		runner:    runner,
		analyses:  analyses,
		logger:    logger,
	}
}

func (s *ExtractStage) Name() string { return constants.StageExtract }

func (s *ExtractStage) Run(ctx context.Context, meta *chain.Metadata) error {
	cls := meta.Classification
	if cls == nil {
		return common.NewInternalError("extract stage reached without classification", nil)
	}

	// any worker may run this stage; re-upload if the provider ref did not
	// survive the handoff. The working copy is only needed for the upload
	// itself, so its lifetime is scoped to it.
	if meta.ProviderFile == nil {
		err := s.workfiles.ProcessWithCleanup(ctx, meta.StoragePath, meta.FileID.String(), meta.FileExt, func(localPath string) error {
			ref, err := s.provider.UploadFile(ctx, localPath, constants.ContentTypeForExt(meta.FileExt))
			if err != nil {
				return err
			}
			meta.ProviderFile = &ref
			return nil
		})
		if err != nil {
			return err
		}
	}

	// thread Pass-1 reasoning as conversation context
	var history []ai.Message
	if cls.Reasoning != "" {
		history = []ai.Message{{
			Role:    "model",
			Content: "Document classified as " + string(cls.Type) + ": " + cls.Reasoning,
		}}
	}

	result, err := s.runner.Run(ctx, cls.Type, *meta.ProviderFile, history)
	if err != nil {
		s.record(ctx, meta, cls.Type, 0, outcomeForError(err), err.Error())
		return err
	}
	meta.Extraction = result

	s.record(ctx, meta, result.Type, result.Confidence, constants.OutcomeOK, "")
	return nil
}

func outcomeForError(err error) constants.AnalysisOutcome {
	switch common.CodeOf(err) {
	case common.CodeStructuralValidation:
		return constants.OutcomeValidationFailed
	case common.CodeUnsupportedType:
		return constants.OutcomeUnsupportedType
	case common.CodeProviderUnavailable:
		return constants.OutcomeProviderError
	default:
		return constants.OutcomeProviderError
	}
}

func (s *ExtractStage) record(ctx context.Context, meta *chain.Metadata, docType constants.DocumentType, confidence float32, outcome constants.AnalysisOutcome, detail string) {
	if err := s.analyses.Record(ctx, repository.RecordParams{
		FileID:     meta.FileID,
		ChainID:    meta.ChainID,
		Stage:      constants.StageExtract,
		DocType:    docType,
		Confidence: confidence,
		Outcome:    outcome,
		Detail:     detail,
	}); err != nil {
		s.logger.Warn("extraction history write failed", "chain_id", meta.ChainID, "error", err)
	}
}
