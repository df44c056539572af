package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	entrecord "github.com/papervault/papervault/gen/ent/analysisrecord"
)

// RecordParams is one classify/extract outcome to append to the history.
type RecordParams struct {
	FileID     uuid.UUID
	ChainID    string
	Stage      string
	DocType    constants.DocumentType
	Confidence float32
	Outcome    constants.AnalysisOutcome
	Detail     string
}

// ClassificationStats aggregates Pass-1 outcomes for the analytics surface.
type ClassificationStats struct {
	Total         int     `json:"total"`
	UnknownType   int     `json:"unknown_type"`
	LowConfidence int     `json:"low_confidence"`
	UnknownRate   float64 `json:"unknown_rate"`
	LowConfRate   float64 `json:"low_confidence_rate"`
}

// TypeFailureRate is the per-type extraction validation failure rate.
type TypeFailureRate struct {
	DocType          string  `json:"doc_type"`
	Total            int     `json:"total"`
	ValidationFailed int     `json:"validation_failed"`
	FailureRate      float64 `json:"failure_rate"`
}

type AnalysisRepository interface {
	Record(ctx context.Context, p RecordParams) error
	ClassificationStats(ctx context.Context, since time.Time) (*ClassificationStats, error)
	ValidationFailuresByType(ctx context.Context, since time.Time) ([]TypeFailureRate, error)
}

type analysisRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAnalysisRepository(entc *ent.Client, logger *slog.Logger) AnalysisRepository {
	return &analysisRepo{ent: entc, logger: logger}
}

func (r *analysisRepo) Record(ctx context.Context, p RecordParams) error {
	builder := r.ent.AnalysisRecord.Create().
		SetFileID(p.FileID).
		SetChainID(p.ChainID).
		SetStage(p.Stage).
		SetOutcome(string(p.Outcome)).
		SetConfidence(p.Confidence)
	if p.DocType != "" {
		builder = builder.SetDocType(string(p.DocType))
	}
	if p.Detail != "" {
		builder = builder.SetDetail(p.Detail)
	}
	if err := builder.Exec(ctx); err != nil {
		// history is advisory, the pipeline must not fail on it
		r.logger.Error("failed to record analysis outcome",
			"file_id", p.FileID, "stage", p.Stage, "outcome", p.Outcome, "error", err)
		return err
	}
	return nil
}

func (r *analysisRepo) ClassificationStats(ctx context.Context, since time.Time) (*ClassificationStats, error) {
	base := func() *ent.AnalysisRecordQuery {
		return r.ent.AnalysisRecord.Query().
			Where(
				entrecord.Stage(constants.StageClassify),
				entrecord.CreatedAtGTE(since),
			)
	}

	total, err := base().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count classifications: %w", err)
	}
	unknown, err := base().
		Where(entrecord.Outcome(string(constants.OutcomeUnknownType))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unknown-type outcomes: %w", err)
	}
	lowConf, err := base().
		Where(entrecord.Outcome(string(constants.OutcomeLowConfidence))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count low-confidence outcomes: %w", err)
	}

	stats := &ClassificationStats{Total: total, UnknownType: unknown, LowConfidence: lowConf}
	if total > 0 {
		stats.UnknownRate = float64(unknown) / float64(total)
		stats.LowConfRate = float64(lowConf) / float64(total)
	}
	return stats, nil
}

func (r *analysisRepo) ValidationFailuresByType(ctx context.Context, since time.Time) ([]TypeFailureRate, error) {
	rows, err := r.ent.AnalysisRecord.Query().
		Where(
			entrecord.Stage(constants.StageExtract),
			entrecord.CreatedAtGTE(since),
			entrecord.DocTypeNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load extraction outcomes: %w", err)
	}

	byType := make(map[string]*TypeFailureRate)
	var order []string
	for _, row := range rows {
		rate, ok := byType[row.DocType]
		if !ok {
			rate = &TypeFailureRate{DocType: row.DocType}
			byType[row.DocType] = rate
			order = append(order, row.DocType)
		}
		rate.Total++
		if row.Outcome == string(constants.OutcomeValidationFailed) {
			rate.ValidationFailed++
		}
	}

	out := make([]TypeFailureRate, 0, len(order))
	for _, t := range order {
		rate := byType[t]
		if rate.Total > 0 {
			rate.FailureRate = float64(rate.ValidationFailed) / float64(rate.Total)
		}
		out = append(out, *rate)
	}
	return out, nil
}
