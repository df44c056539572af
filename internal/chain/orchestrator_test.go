package chain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/repository"
)

type metaFake struct {
	byChain map[string]*Metadata
}

func newMetaFake() *metaFake { return &metaFake{byChain: map[string]*Metadata{}} }

func (f *metaFake) Get(_ context.Context, chainID string) (*Metadata, error) {
	if m, ok := f.byChain[chainID]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, ErrMetadataExpired
}

func (f *metaFake) Put(_ context.Context, meta *Metadata) error {
	cp := *meta
	f.byChain[meta.ChainID] = &cp
	return nil
}

func (f *metaFake) Forget(_ context.Context, chainID string) error {
	delete(f.byChain, chainID)
	return nil
}

type queueFake struct {
	published []StageMessage
}

func (f *queueFake) PublishStage(_ context.Context, msg StageMessage) error {
	f.published = append(f.published, msg)
	return nil
}

type chainFilesFake struct {
	rows      map[uuid.UUID]*ent.UploadedFile
	completed []uuid.UUID
	failed    map[uuid.UUID]string
}

func newChainFilesFake() *chainFilesFake {
	return &chainFilesFake{rows: map[uuid.UUID]*ent.UploadedFile{}, failed: map[uuid.UUID]string{}}
}

func (f *chainFilesFake) add(owner uuid.UUID) *ent.UploadedFile {
	row := &ent.UploadedFile{
		ID:          uuid.New(),
		OwnerID:     owner,
		StoragePath: "uploads/x.pdf",
		FileExt:     "pdf",
		Category:    string(constants.CategoryReceipt),
		Status:      string(constants.FileStatusPending),
	}
	f.rows[row.ID] = row
	return row
}

func (f *chainFilesFake) GetByID(_ context.Context, id uuid.UUID) (*ent.UploadedFile, error) {
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *chainFilesFake) GetByOwnerAndHash(context.Context, uuid.UUID, []byte) (*ent.UploadedFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *chainFilesFake) UpsertByHash(context.Context, repository.CreateFileParams) (*ent.UploadedFile, bool, error) {
	return nil, false, errors.New("not used")
}

func (f *chainFilesFake) MarkProcessing(context.Context, uuid.UUID) error { return nil }

func (f *chainFilesFake) MarkCompleted(_ context.Context, id uuid.UUID) error {
	f.completed = append(f.completed, id)
	return nil
}

func (f *chainFilesFake) MarkFailed(_ context.Context, id uuid.UUID, msg string) error {
	f.failed[id] = msg
	return nil
}

func (f *chainFilesFake) SetArchivePath(context.Context, uuid.UUID, string) error { return nil }

type notifierFake struct {
	notes []notify.Notification
}

func (f *notifierFake) Notify(_ context.Context, n notify.Notification) {
	f.notes = append(f.notes, n)
}

type sweeperFake struct {
	calls   int
	removed []string
}

func (f *sweeperFake) Remove(localPath string) {
	f.removed = append(f.removed, localPath)
}

func (f *sweeperFake) SweepStale(time.Duration) int {
	f.calls++
	return 2
}

type stageFake struct {
	name string
	err  error
	runs int
}

func (s *stageFake) Name() string { return s.name }

func (s *stageFake) Run(context.Context, *Metadata) error {
	s.runs++
	return s.err
}

type fixture struct {
	orch     *Orchestrator
	meta     *metaFake
	queue    *queueFake
	files    *chainFilesFake
	notifier *notifierFake
	sweeper  *sweeperFake
	classify *stageFake
	extract  *stageFake
	finalize *stageFake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		meta:     newMetaFake(),
		queue:    &queueFake{},
		files:    newChainFilesFake(),
		notifier: &notifierFake{},
		sweeper:  &sweeperFake{},
		classify: &stageFake{name: constants.StageClassify},
		extract:  &stageFake{name: constants.StageExtract},
		finalize: &stageFake{name: constants.StageFinalize},
	}
	f.orch = NewOrchestrator(
		[]Stage{f.classify, f.extract, f.finalize},
		f.meta, f.queue, f.files, f.notifier, f.sweeper, nil,
		Policy{MaxAttempts: 5, RetryBackoff: time.Millisecond, StageTimeout: time.Minute, StaleFileAge: time.Hour},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func TestDispatchPublishesFirstStage(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())

	chainID, err := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, []string{"tag-1"}, "march receipts")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(f.queue.published) != 1 {
		t.Fatalf("published = %d", len(f.queue.published))
	}
	msg := f.queue.published[0]
	if msg.Stage != constants.StageClassify || msg.Attempt != 1 || msg.ChainID != chainID {
		t.Fatalf("msg = %+v", msg)
	}
	meta := f.meta.byChain[chainID]
	if meta == nil || meta.FileID != file.ID || meta.TagIDs[0] != "tag-1" {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestHandleMessageAdvancesToNextStage(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")
	first := f.queue.published[0]

	if err := f.orch.HandleMessage(context.Background(), first); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if f.classify.runs != 1 {
		t.Fatalf("classify runs = %d", f.classify.runs)
	}
	if len(f.queue.published) != 2 {
		t.Fatalf("published = %d", len(f.queue.published))
	}
	next := f.queue.published[1]
	if next.Stage != constants.StageExtract || next.Attempt != 1 || next.ChainID != chainID {
		t.Fatalf("next = %+v", next)
	}
	if p := f.meta.byChain[chainID].Progress; p != 33 {
		t.Fatalf("progress = %d", p)
	}
}

func TestChainCompletionNotifiesAndForgets(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")

	for len(f.queue.published) > 0 {
		msg := f.queue.published[0]
		f.queue.published = f.queue.published[1:]
		if err := f.orch.HandleMessage(context.Background(), msg); err != nil {
			t.Fatalf("HandleMessage(%s): %v", msg.Stage, err)
		}
	}

	if len(f.files.completed) != 1 || f.files.completed[0] != file.ID {
		t.Fatalf("completed = %v", f.files.completed)
	}
	if len(f.notifier.notes) != 1 || f.notifier.notes[0].Kind != notify.KindCompleted {
		t.Fatalf("notes = %+v", f.notifier.notes)
	}
	if _, alive := f.meta.byChain[chainID]; alive {
		t.Fatal("metadata must be forgotten after completion")
	}
}

func TestTransientFailureRepublishesWithBackoff(t *testing.T) {
	f := newFixture(t)
	f.classify.err = common.NewTransientError("provider 503", nil)
	file := f.files.add(uuid.New())
	_, _ = f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")
	first := f.queue.published[0]

	if err := f.orch.HandleMessage(context.Background(), first); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.queue.published) != 2 {
		t.Fatalf("published = %d", len(f.queue.published))
	}
	retry := f.queue.published[1]
	if retry.Stage != constants.StageClassify || retry.Attempt != 2 {
		t.Fatalf("retry = %+v", retry)
	}
	if len(f.files.failed) != 0 {
		t.Fatal("transient failure must not fail the file")
	}
}

func TestTransientFailureExhaustsAttemptBudget(t *testing.T) {
	f := newFixture(t)
	f.classify.err = common.NewTransientError("provider down", nil)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")

	last := StageMessage{
		ChainID: chainID, TaskID: "t", FileID: file.ID,
		Category: constants.CategoryReceipt, Stage: constants.StageClassify, Attempt: 5,
	}
	if err := f.orch.HandleMessage(context.Background(), last); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.queue.published) != 1 {
		t.Fatal("exhausted budget must not republish")
	}
	if _, ok := f.files.failed[file.ID]; !ok {
		t.Fatal("file must be failed after the last attempt")
	}
	if len(f.notifier.notes) != 1 || f.notifier.notes[0].Kind != notify.KindFailed {
		t.Fatalf("notes = %+v", f.notifier.notes)
	}
}

func TestTerminalFailureFailsImmediately(t *testing.T) {
	f := newFixture(t)
	f.extract.err = common.NewValidationError("required field \"total\" missing", nil)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")

	msg := StageMessage{
		ChainID: chainID, TaskID: "t", FileID: file.ID,
		Category: constants.CategoryReceipt, Stage: constants.StageExtract, Attempt: 1,
	}
	if err := f.orch.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.queue.published) != 1 {
		t.Fatal("terminal failure must never retry")
	}
	if reason := f.files.failed[file.ID]; reason == "" {
		t.Fatal("file must carry the failure message")
	}
	if _, alive := f.meta.byChain[chainID]; alive {
		t.Fatal("metadata must be forgotten on terminal failure")
	}
}

func TestTerminalFailureReclaimsLocalWorkingCopy(t *testing.T) {
	f := newFixture(t)
	f.extract.err = common.NewValidationError("required field \"total\" missing", nil)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")
	f.meta.byChain[chainID].LocalPath = "/work/" + file.ID.String() + ".pdf"

	msg := StageMessage{
		ChainID: chainID, TaskID: "t", FileID: file.ID,
		Category: constants.CategoryReceipt, Stage: constants.StageExtract, Attempt: 1,
	}
	if err := f.orch.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.sweeper.removed) != 1 || f.sweeper.removed[0] != "/work/"+file.ID.String()+".pdf" {
		t.Fatalf("removed = %v, working copy must be reclaimed on terminal failure", f.sweeper.removed)
	}
}

func TestUnknownStageIsUnprocessable(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())

	err := f.orch.HandleMessage(context.Background(), StageMessage{
		ChainID: "c", TaskID: "t", FileID: file.ID,
		Category: constants.CategoryReceipt, Stage: "shred", Attempt: 1,
	})
	if !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("err = %v, want unprocessable so the consumer drops it", err)
	}
}

func TestShutdownDuringBackoffLeavesChainResumable(t *testing.T) {
	f := newFixture(t)
	// long backoff so the cancelled context always wins the select
	f.orch = NewOrchestrator(
		[]Stage{f.classify, f.extract, f.finalize},
		f.meta, f.queue, f.files, f.notifier, f.sweeper, nil,
		Policy{MaxAttempts: 5, RetryBackoff: time.Minute, StageTimeout: time.Minute, StaleFileAge: time.Hour},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	f.classify.err = common.NewTransientError("provider 503", nil)
	file := f.files.add(uuid.New())
	chainID, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")
	first := f.queue.published[0]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.orch.HandleMessage(ctx, first)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want the context error", err)
	}
	if errors.Is(err, ErrUnprocessable) {
		t.Fatal("shutdown mid-backoff must requeue, not drop")
	}
	if len(f.queue.published) != 1 {
		t.Fatal("no retry may be published after shutdown")
	}
	if len(f.files.failed) != 0 {
		t.Fatal("shutdown must not fail the file")
	}
	if _, alive := f.meta.byChain[chainID]; !alive {
		t.Fatal("metadata must survive so the redelivery can resume the chain")
	}
}

func TestExpiredMetadataIsIdempotentNoOp(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())

	msg := StageMessage{
		ChainID: "gone", TaskID: "t", FileID: file.ID,
		Category: constants.CategoryReceipt, Stage: constants.StageFinalize, Attempt: 1,
	}
	if err := f.orch.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if f.finalize.runs != 0 {
		t.Fatal("stage must not run without metadata")
	}
	if f.sweeper.calls != 1 {
		t.Fatal("expired metadata must trigger the stale-file sweep")
	}
	if len(f.files.failed) != 0 || len(f.queue.published) != 0 {
		t.Fatal("no-op must not fail the file or publish")
	}
}

func TestRestartPreservesChainID(t *testing.T) {
	f := newFixture(t)
	file := f.files.add(uuid.New())
	original, _ := f.orch.Dispatch(context.Background(), file.ID, constants.CategoryReceipt, nil, "")
	originalTask := f.meta.byChain[original].TaskID

	restarted, err := f.orch.Restart(context.Background(), file.ID, original)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if restarted != original {
		t.Fatalf("chain id changed: %s vs %s", restarted, original)
	}
	meta := f.meta.byChain[original]
	if meta.TaskID == originalTask {
		t.Fatal("restart must issue a fresh task id")
	}
	last := f.queue.published[len(f.queue.published)-1]
	if last.Stage != constants.StageClassify || last.Attempt != 1 {
		t.Fatalf("restart message = %+v", last)
	}
}

func TestAdvanceProgressIsMonotonic(t *testing.T) {
	m := &Metadata{Progress: 66}
	m.AdvanceProgress(33)
	if m.Progress != 66 {
		t.Fatalf("progress regressed to %d", m.Progress)
	}
	m.AdvanceProgress(250)
	if m.Progress != 100 {
		t.Fatalf("progress = %d, want capped at 100", m.Progress)
	}
}
