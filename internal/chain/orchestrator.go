package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/observability/metrics"
	"github.com/papervault/papervault/internal/repository"
)

// Sweeper reclaims local working files: the known copy of a terminally
// failed chain, and anything stale left behind when a stage arrives after
// its chain metadata expired.
type Sweeper interface {
	Remove(localPath string)
	SweepStale(maxAge time.Duration) int
}

// Policy is the fixed retry/timeout budget of the orchestrator.
type Policy struct {
	MaxAttempts  int
	RetryBackoff time.Duration
	StageTimeout time.Duration
	StaleFileAge time.Duration
}

// Orchestrator runs the stage chain per file: dispatch, stage execution,
// retry/backoff on transient failures, terminal failure handling, and
// completion with owner notification.
type Orchestrator struct {
	stages   map[string]Stage
	meta     MetadataStore
	queue    Queue
	files    repository.UploadedFileRepository
	notifier notify.Notifier
	sweeper  Sweeper
	metrics  *metrics.PipelineMetrics
	policy   Policy
	logger   *slog.Logger
}

func NewOrchestrator(
	stages []Stage,
	meta MetadataStore,
	queue Queue,
	files repository.UploadedFileRepository,
	notifier notify.Notifier,
	sweeper Sweeper,
	m *metrics.PipelineMetrics,
	policy Policy,
	logger *slog.Logger,
) *Orchestrator {
	byName := make(map[string]Stage, len(stages))
	for _, s := range stages {
		byName[s.Name()] = s
	}
	return &Orchestrator{
		stages:   byName,
		meta:     meta,
		queue:    queue,
		files:    files,
		notifier: notifier,
		sweeper:  sweeper,
		metrics:  m,
		policy:   policy,
		logger:   logger,
	}
}

// Dispatch starts a new chain for a stored file and returns its chain id.
func (o *Orchestrator) Dispatch(ctx context.Context, fileID uuid.UUID, category constants.FileCategory, tagIDs []string, note string) (string, error) {
	file, err := o.files.GetByID(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("load file %s: %w", fileID, err)
	}

	chainID := uuid.NewString()
	if err := o.start(ctx, chainID, &Metadata{
		ChainID:     chainID,
		TaskID:      uuid.NewString(),
		FileID:      file.ID,
		OwnerID:     file.OwnerID,
		Category:    category,
		StoragePath: file.StoragePath,
		FileExt:     file.FileExt,
		TagIDs:      tagIDs,
		Note:        note,
	}); err != nil {
		return "", err
	}
	o.logger.Info("chain dispatched", "chain_id", chainID, "file_id", fileID, "category", category)
	return chainID, nil
}

// Restart re-dispatches a file's chain from its first stage under a fresh
// task id. A non-empty chainID preserves the original correlation id for
// auditability. Entity creation stays idempotent through the pre-insert
// guard, so restarting a completed chain is safe.
func (o *Orchestrator) Restart(ctx context.Context, fileID uuid.UUID, chainID string) (string, error) {
	file, err := o.files.GetByID(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("load file %s: %w", fileID, err)
	}
	if chainID == "" {
		chainID = uuid.NewString()
	}

	if err := o.start(ctx, chainID, &Metadata{
		ChainID:     chainID,
		TaskID:      uuid.NewString(),
		FileID:      file.ID,
		OwnerID:     file.OwnerID,
		Category:    constants.FileCategory(file.Category),
		StoragePath: file.StoragePath,
		FileExt:     file.FileExt,
	}); err != nil {
		return "", err
	}
	o.logger.Info("chain restarted", "chain_id", chainID, "file_id", fileID)
	return chainID, nil
}

func (o *Orchestrator) start(ctx context.Context, chainID string, meta *Metadata) error {
	if err := o.meta.Put(ctx, meta); err != nil {
		return err
	}
	first := Topology(meta.Category)[0]
	return o.queue.PublishStage(ctx, StageMessage{
		ChainID:  chainID,
		TaskID:   meta.TaskID,
		FileID:   meta.FileID,
		Category: meta.Category,
		Stage:    first,
		Attempt:  1,
	})
}

// Progress reports the chain's progress in [0,100]. Expired metadata on a
// completed file reads as 100.
func (o *Orchestrator) Progress(ctx context.Context, chainID string) (int, error) {
	meta, err := o.meta.Get(ctx, chainID)
	if errors.Is(err, ErrMetadataExpired) {
		return 100, nil
	}
	if err != nil {
		return 0, err
	}
	return meta.Progress, nil
}

// HandleMessage executes one stage delivery. It normally resolves the
// message itself: retries are republished, terminal failures fail the
// file. Returned errors hand the delivery back to the consumer, which
// requeues them unless they wrap ErrUnprocessable.
func (o *Orchestrator) HandleMessage(ctx context.Context, msg StageMessage) error {
	stage, ok := o.stages[msg.Stage]
	if !ok {
		return fmt.Errorf("%w: unknown stage %q", ErrUnprocessable, msg.Stage)
	}

	log := o.logger.With("chain_id", msg.ChainID, "file_id", msg.FileID, "stage", msg.Stage, "attempt", msg.Attempt)

	meta, err := o.meta.Get(ctx, msg.ChainID)
	if errors.Is(err, ErrMetadataExpired) {
		// consumed by a concurrent retry or aged out; no-op with a
		// conservative sweep of stale local files
		if o.sweeper != nil {
			if n := o.sweeper.SweepStale(o.policy.StaleFileAge); n > 0 {
				log.Info("swept stale working files after metadata expiry", "count", n)
			}
		}
		log.Info("chain metadata gone, stage skipped")
		return nil
	}
	if err != nil {
		return o.handleFailure(ctx, msg, nil, common.NewTransientError("chain metadata unavailable", err), log)
	}

	stageCtx := ctx
	if o.policy.StageTimeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, o.policy.StageTimeout)
		defer cancel()
	}

	o.metrics.StageStarted()
	start := time.Now()
	runErr := stage.Run(stageCtx, meta)
	if runErr != nil {
		o.metrics.StageFinished(msg.Stage, "error", time.Since(start))
		return o.handleFailure(ctx, msg, meta, runErr, log)
	}
	o.metrics.StageFinished(msg.Stage, "success", time.Since(start))

	idx := stageIndex(msg.Category, msg.Stage)
	meta.AdvanceProgress(progressAfter(msg.Category, idx))

	if idx == len(Topology(msg.Category))-1 {
		return o.complete(ctx, msg, meta, log)
	}

	if err := o.meta.Put(ctx, meta); err != nil {
		return o.handleFailure(ctx, msg, meta, common.NewTransientError("persist chain metadata", err), log)
	}
	next := Topology(msg.Category)[idx+1]
	if err := o.queue.PublishStage(ctx, StageMessage{
		ChainID:  msg.ChainID,
		TaskID:   msg.TaskID,
		FileID:   msg.FileID,
		Category: msg.Category,
		Stage:    next,
		Attempt:  1,
	}); err != nil {
		return o.handleFailure(ctx, msg, meta, common.NewTransientError("enqueue next stage", err), log)
	}
	log.Info("stage complete", "progress", meta.Progress, "next", next)
	return nil
}

func (o *Orchestrator) complete(ctx context.Context, msg StageMessage, meta *Metadata, log *slog.Logger) error {
	if err := o.files.MarkCompleted(ctx, msg.FileID); err != nil {
		return o.handleFailure(ctx, msg, meta, common.NewTransientError("mark file completed", err), log)
	}
	o.notifier.Notify(ctx, notify.Notification{
		Kind:     notify.KindCompleted,
		OwnerID:  meta.OwnerID,
		FileID:   msg.FileID,
		ChainID:  msg.ChainID,
		EntityID: meta.EntityID,
	})
	if err := o.meta.Forget(ctx, msg.ChainID); err != nil {
		log.Warn("failed to forget chain metadata", "error", err)
	}
	log.Info("chain complete", "progress", 100)
	return nil
}

// handleFailure applies the retry policy: transient errors are republished
// with a fixed backoff until the attempt budget runs out, everything else
// fails the file immediately.
func (o *Orchestrator) handleFailure(ctx context.Context, msg StageMessage, meta *Metadata, runErr error, log *slog.Logger) error {
	if common.IsRetryable(runErr) && msg.Attempt < o.policy.MaxAttempts {
		log.Warn("transient stage failure, retrying",
			"error", runErr, "backoff", o.policy.RetryBackoff, "max_attempts", o.policy.MaxAttempts)
		o.metrics.StageRetried(msg.Stage)

		select {
		case <-time.After(o.policy.RetryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}

		if meta != nil {
			// renew the TTL so a long retry series cannot outlive its state
			if err := o.meta.Put(ctx, meta); err != nil {
				log.Warn("failed to renew chain metadata", "error", err)
			}
		}
		retry := msg
		retry.Attempt++
		return o.queue.PublishStage(ctx, retry)
	}

	reason := runErr.Error()
	var pe *common.PipelineError
	if errors.As(runErr, &pe) {
		reason = pe.UserMessage()
	}
	log.Error("stage failed terminally",
		"error", runErr, "code", common.CodeOf(runErr), "attempt", msg.Attempt)

	if err := o.files.MarkFailed(ctx, msg.FileID, reason); err != nil {
		log.Error("failed to mark file failed", "error", err)
	}
	ownerID := uuid.Nil
	if meta != nil {
		ownerID = meta.OwnerID
		// the metadata is forgotten below; reclaim the working copy now or
		// it lingers until the stale sweep of some unrelated chain
		if o.sweeper != nil && meta.LocalPath != "" {
			o.sweeper.Remove(meta.LocalPath)
		}
	}
	o.notifier.Notify(ctx, notify.Notification{
		Kind:    notify.KindFailed,
		OwnerID: ownerID,
		FileID:  msg.FileID,
		ChainID: msg.ChainID,
		Reason:  reason,
	})
	if err := o.meta.Forget(ctx, msg.ChainID); err != nil {
		log.Warn("failed to forget chain metadata", "error", err)
	}
	return nil
}
