package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/classify"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/dedupe"
	"github.com/papervault/papervault/internal/extract"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/storage"
)

type workfileFake struct {
	ensured  int
	removed  []string
	localDir string
	err      error
}

func (w *workfileFake) EnsureLocalFile(_ context.Context, _, fileID, ext, existing string) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.ensured++
	if existing != "" {
		return existing, nil
	}
	return w.localDir + "/" + fileID + "." + ext, nil
}

func (w *workfileFake) ProcessWithCleanup(ctx context.Context, remotePath, fileID, ext string, fn func(string) error) error {
	local, err := w.EnsureLocalFile(ctx, remotePath, fileID, ext, "")
	if err != nil {
		return err
	}
	defer w.Remove(local)
	return fn(local)
}

func (w *workfileFake) Remove(localPath string) {
	w.removed = append(w.removed, localPath)
}

type providerFake struct {
	uploadRef  ai.FileRef
	uploadErr  error
	payload    json.RawMessage
	analyzeErr error
	deleteErr  error

	uploads int
	deletes int
	lastReq ai.AnalyzeRequest
}

func (p *providerFake) UploadFile(context.Context, string, string) (ai.FileRef, error) {
	if p.uploadErr != nil {
		return ai.FileRef{}, p.uploadErr
	}
	p.uploads++
	return p.uploadRef, nil
}

func (p *providerFake) Analyze(_ context.Context, req ai.AnalyzeRequest) (json.RawMessage, error) {
	p.lastReq = req
	if p.analyzeErr != nil {
		return nil, p.analyzeErr
	}
	return p.payload, nil
}

func (p *providerFake) DeleteFile(context.Context, ai.FileRef) error {
	if p.deleteErr != nil {
		return p.deleteErr
	}
	p.deletes++
	return nil
}

type analysesFake struct {
	records []repository.RecordParams
}

func (a *analysesFake) Record(_ context.Context, p repository.RecordParams) error {
	a.records = append(a.records, p)
	return nil
}

func (a *analysesFake) ClassificationStats(context.Context, time.Time) (*repository.ClassificationStats, error) {
	return nil, errors.New("not used")
}

func (a *analysesFake) ValidationFailuresByType(context.Context, time.Time) ([]repository.TypeFailureRate, error) {
	return nil, errors.New("not used")
}

type statusFake struct {
	processing []uuid.UUID
	archived   map[uuid.UUID]string
}

func (f *statusFake) GetByID(context.Context, uuid.UUID) (*ent.UploadedFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *statusFake) GetByOwnerAndHash(context.Context, uuid.UUID, []byte) (*ent.UploadedFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *statusFake) UpsertByHash(context.Context, repository.CreateFileParams) (*ent.UploadedFile, bool, error) {
	return nil, false, errors.New("not used")
}

func (f *statusFake) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.processing = append(f.processing, id)
	return nil
}

func (f *statusFake) MarkCompleted(context.Context, uuid.UUID) error      { return nil }
func (f *statusFake) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

func (f *statusFake) SetArchivePath(_ context.Context, id uuid.UUID, path string) error {
	if f.archived == nil {
		f.archived = map[uuid.UUID]string{}
	}
	f.archived[id] = path
	return nil
}

type objectStoreFake struct {
	objects map[string][]byte
}

func newObjectStoreFake() *objectStoreFake {
	return &objectStoreFake{objects: map[string][]byte{}}
}

func (s *objectStoreFake) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *objectStoreFake) Put(_ context.Context, path string, data []byte, _ string) error {
	s.objects[path] = data
	return nil
}

func (s *objectStoreFake) Delete(_ context.Context, path string) error {
	delete(s.objects, path)
	return nil
}

func (s *objectStoreFake) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *objectStoreFake) Stat(_ context.Context, path string) (storage.ObjectInfo, error) {
	data, ok := s.objects[path]
	if !ok {
		return storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	return storage.ObjectInfo{Size: int64(len(data))}, nil
}

type entitiesFake struct {
	existing *ent.Entity
	created  []*repository.CreateEntityRequest
	err      error
}

func (f *entitiesFake) FindByFileID(context.Context, uuid.UUID) (*ent.Entity, error) {
	if f.existing != nil {
		return f.existing, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *entitiesFake) CreateFromExtraction(_ context.Context, req *repository.CreateEntityRequest) (*ent.Entity, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if f.existing != nil {
		return f.existing, false, nil
	}
	f.created = append(f.created, req)
	return &ent.Entity{ID: uuid.New(), FileID: req.FileID, OwnerID: req.OwnerID}, true, nil
}

func (f *entitiesFake) DuplicateGroups(context.Context) ([][]dedupe.Candidate, error) {
	return nil, nil
}

func (f *entitiesFake) DeleteWithItems(context.Context, []uuid.UUID) error { return nil }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMeta() *chain.Metadata {
	return &chain.Metadata{
		ChainID:     uuid.NewString(),
		TaskID:      uuid.NewString(),
		FileID:      uuid.New(),
		OwnerID:     uuid.New(),
		Category:    constants.CategoryReceipt,
		StoragePath: "uploads/owner/abc.pdf",
		FileExt:     "pdf",
	}
}

func TestClassifyStageClassifiesAndCachesRef(t *testing.T) {
	provider := &providerFake{
		uploadRef: ai.FileRef{Name: "files/p1", URI: "https://provider/files/p1"},
		payload:   json.RawMessage(`{"type":"receipt","confidence":0.92,"reasoning":"shows line items and a total"}`),
	}
	files := &statusFake{}
	analyses := &analysesFake{}
	stage := NewClassifyStage(
		&workfileFake{localDir: t.TempDir()},
		provider,
		classify.NewClassifier(provider, discard()),
		files, analyses, 0, discard(),
	)

	meta := newMeta()
	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(files.processing) != 1 || files.processing[0] != meta.FileID {
		t.Fatal("file not marked processing")
	}
	if meta.ProviderFile == nil || meta.ProviderFile.Name != "files/p1" {
		t.Fatalf("provider ref = %+v", meta.ProviderFile)
	}
	if meta.LocalPath == "" {
		t.Fatal("local path not recorded for later stages")
	}
	if meta.Classification == nil || meta.Classification.Type != constants.TypeReceipt {
		t.Fatalf("classification = %+v", meta.Classification)
	}
	if len(analyses.records) != 1 || analyses.records[0].Outcome != constants.OutcomeOK {
		t.Fatalf("records = %+v", analyses.records)
	}
}

func TestClassifyStageParksUnknownType(t *testing.T) {
	provider := &providerFake{
		payload: json.RawMessage(`{"type":"crayon drawing","confidence":0.95}`),
	}
	analyses := &analysesFake{}
	stage := NewClassifyStage(
		&workfileFake{localDir: t.TempDir()},
		provider,
		classify.NewClassifier(provider, discard()),
		&statusFake{}, analyses, 0, discard(),
	)

	err := stage.Run(context.Background(), newMeta())
	if err == nil {
		t.Fatal("unknown type must park the file")
	}
	if common.CodeOf(err) != common.CodeUnsupportedType || common.IsRetryable(err) {
		t.Fatalf("err = %v", err)
	}
	if len(analyses.records) != 1 || analyses.records[0].Outcome != constants.OutcomeUnknownType {
		t.Fatalf("records = %+v", analyses.records)
	}
}

func TestClassifyStageParksLowConfidence(t *testing.T) {
	provider := &providerFake{
		payload: json.RawMessage(`{"type":"invoice","confidence":0.41,"reasoning":"blurry scan"}`),
	}
	analyses := &analysesFake{}
	stage := NewClassifyStage(
		&workfileFake{localDir: t.TempDir()},
		provider,
		classify.NewClassifier(provider, discard()),
		&statusFake{}, analyses, 0.70, discard(),
	)

	err := stage.Run(context.Background(), newMeta())
	if err == nil || common.IsRetryable(err) {
		t.Fatalf("low confidence must be terminal, got %v", err)
	}
	if analyses.records[0].Outcome != constants.OutcomeLowConfidence {
		t.Fatalf("outcome = %s", analyses.records[0].Outcome)
	}
}

func TestClassifyStageReusesExistingProviderRef(t *testing.T) {
	provider := &providerFake{
		payload: json.RawMessage(`{"type":"receipt","confidence":0.9}`),
	}
	stage := NewClassifyStage(
		&workfileFake{localDir: t.TempDir()},
		provider,
		classify.NewClassifier(provider, discard()),
		&statusFake{}, &analysesFake{}, 0, discard(),
	)

	meta := newMeta()
	meta.ProviderFile = &ai.FileRef{Name: "files/cached"}
	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if provider.uploads != 0 {
		t.Fatal("retry must reuse the cached provider ref")
	}
}

func newExtractStage(t *testing.T, provider *providerFake, analyses *analysesFake) *ExtractStage {
	t.Helper()
	registry, err := extract.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	runner := extract.NewRunner(provider, registry, discard())
	return NewExtractStage(&workfileFake{localDir: t.TempDir()}, provider, runner, analyses, discard())
}

func TestExtractStageProducesResultWithHistory(t *testing.T) {
	provider := &providerFake{
		payload: json.RawMessage(`{"merchant_name":"REWE Markt","tx_date":"2026-03-14","total":"49.03","confidence":0.92}`),
	}
	analyses := &analysesFake{}
	stage := newExtractStage(t, provider, analyses)

	meta := newMeta()
	meta.ProviderFile = &ai.FileRef{Name: "files/p1"}
	meta.Classification = &classify.Result{
		Type: constants.TypeReceipt, Confidence: 0.92, Reasoning: "shows line items",
	}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if meta.Extraction == nil || meta.Extraction.Title != "REWE Markt" {
		t.Fatalf("extraction = %+v", meta.Extraction)
	}
	if len(provider.lastReq.History) != 1 {
		t.Fatal("Pass-1 reasoning not threaded as conversation context")
	}
	if analyses.records[0].Outcome != constants.OutcomeOK {
		t.Fatalf("outcome = %s", analyses.records[0].Outcome)
	}
}

func TestExtractStageRecordsValidationFailure(t *testing.T) {
	provider := &providerFake{
		payload: json.RawMessage(`{"provider_name":"Siemens","product_name":"Dishwasher"}`),
	}
	analyses := &analysesFake{}
	stage := newExtractStage(t, provider, analyses)

	meta := newMeta()
	meta.ProviderFile = &ai.FileRef{Name: "files/w1"}
	meta.Classification = &classify.Result{Type: constants.TypeWarranty, Confidence: 0.95}

	err := stage.Run(context.Background(), meta)
	if common.CodeOf(err) != common.CodeStructuralValidation {
		t.Fatalf("err = %v", err)
	}
	if common.IsRetryable(err) {
		t.Fatal("validation failure must not retry")
	}
	if analyses.records[0].Outcome != constants.OutcomeValidationFailed {
		t.Fatalf("outcome = %s", analyses.records[0].Outcome)
	}
	if meta.Extraction != nil {
		t.Fatal("failed extraction must not land in metadata")
	}
}

func TestExtractStageReuploadScopesWorkingCopy(t *testing.T) {
	provider := &providerFake{
		uploadRef: ai.FileRef{Name: "files/p2"},
		payload:   json.RawMessage(`{"merchant_name":"Kiosk","tx_date":"2026-03-14","total":"3.50","confidence":0.9}`),
	}
	registry, err := extract.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	workfiles := &workfileFake{localDir: t.TempDir()}
	stage := NewExtractStage(workfiles, provider, extract.NewRunner(provider, registry, discard()), &analysesFake{}, discard())

	// provider ref lost in the handoff, e.g. a different worker picked up
	// the stage
	meta := newMeta()
	meta.Classification = &classify.Result{Type: constants.TypeReceipt, Confidence: 0.9}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if provider.uploads != 1 || meta.ProviderFile == nil || meta.ProviderFile.Name != "files/p2" {
		t.Fatalf("re-upload not performed: uploads=%d ref=%+v", provider.uploads, meta.ProviderFile)
	}
	if len(workfiles.removed) != 1 {
		t.Fatal("working copy for the re-upload must be reclaimed with the upload")
	}
}

func TestExtractStageWithoutClassificationIsTerminal(t *testing.T) {
	stage := newExtractStage(t, &providerFake{}, &analysesFake{})

	err := stage.Run(context.Background(), newMeta())
	if err == nil || common.IsRetryable(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestFinalizeStagePersistsArchivesAndCleansUp(t *testing.T) {
	provider := &providerFake{}
	entities := &entitiesFake{}
	files := &statusFake{}
	store := newObjectStoreFake()
	store.objects["uploads/owner/abc.pdf"] = []byte("pdf bytes")
	workfiles := &workfileFake{}
	stage := NewFinalizeStage(entities, files, store, provider, workfiles, discard())

	meta := newMeta()
	meta.ProviderFile = &ai.FileRef{Name: "files/p1"}
	meta.LocalPath = "/work/abc.pdf"
	meta.Extraction = &extract.Result{Type: constants.TypeReceipt, Title: "REWE Markt"}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(entities.created) != 1 {
		t.Fatalf("created = %d", len(entities.created))
	}
	if meta.EntityID == nil {
		t.Fatal("entity id not stored in metadata")
	}
	if string(store.objects["archive/owner/abc.pdf"]) != "pdf bytes" {
		t.Fatal("original not copied into the archive prefix")
	}
	if files.archived[meta.FileID] != "archive/owner/abc.pdf" {
		t.Fatalf("archive path = %q", files.archived[meta.FileID])
	}
	if provider.deletes != 1 || meta.ProviderFile != nil {
		t.Fatal("provider file not cleaned up")
	}
	if len(workfiles.removed) != 1 || meta.LocalPath != "" {
		t.Fatal("local working copy not reclaimed")
	}
}

func TestFinalizeStageArchiveFailureDoesNotFailChain(t *testing.T) {
	// no object under the storage path, so the archive copy cannot happen
	files := &statusFake{}
	stage := NewFinalizeStage(&entitiesFake{}, files, newObjectStoreFake(), &providerFake{}, &workfileFake{}, discard())

	meta := newMeta()
	meta.Extraction = &extract.Result{Type: constants.TypeReceipt, Title: "Kiosk"}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("archival is best effort: %v", err)
	}
	if len(files.archived) != 0 {
		t.Fatal("no archive path must be recorded when the copy failed")
	}
}

func TestFinalizeStageDiscardsDuplicateExtraction(t *testing.T) {
	existing := &ent.Entity{ID: uuid.New()}
	entities := &entitiesFake{existing: existing}
	stage := NewFinalizeStage(entities, &statusFake{}, newObjectStoreFake(), &providerFake{}, &workfileFake{}, discard())

	meta := newMeta()
	meta.Extraction = &extract.Result{Type: constants.TypeReceipt, Title: "REWE Markt"}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("a raced chain must finish cleanly: %v", err)
	}
	if meta.EntityID == nil || *meta.EntityID != existing.ID {
		t.Fatalf("entity id = %v", meta.EntityID)
	}
}

func TestFinalizeStageKeepsRefWhenProviderDeleteFails(t *testing.T) {
	provider := &providerFake{deleteErr: errors.New("provider flaking")}
	stage := NewFinalizeStage(&entitiesFake{}, &statusFake{}, newObjectStoreFake(), provider, &workfileFake{}, discard())

	meta := newMeta()
	meta.ProviderFile = &ai.FileRef{Name: "files/p1"}
	meta.Extraction = &extract.Result{Type: constants.TypeReceipt, Title: "Kiosk"}

	if err := stage.Run(context.Background(), meta); err != nil {
		t.Fatalf("cleanup failure must never propagate: %v", err)
	}
	if meta.ProviderFile == nil {
		t.Fatal("failed delete must keep the ref for a later sweep")
	}
}
