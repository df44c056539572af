package ingest

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/dedupe"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/storage"
)

type filesFake struct {
	rows   map[string]*ent.UploadedFile // owner|hash -> row
	failed map[uuid.UUID]string
}

func newFilesFake() *filesFake {
	return &filesFake{rows: map[string]*ent.UploadedFile{}, failed: map[uuid.UUID]string{}}
}

func key(owner uuid.UUID, hash []byte) string {
	return owner.String() + "|" + hex.EncodeToString(hash)
}

func (f *filesFake) GetByID(_ context.Context, id uuid.UUID) (*ent.UploadedFile, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *filesFake) GetByOwnerAndHash(_ context.Context, owner uuid.UUID, hash []byte) (*ent.UploadedFile, error) {
	if r, ok := f.rows[key(owner, hash)]; ok {
		return r, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *filesFake) UpsertByHash(_ context.Context, p repository.CreateFileParams) (*ent.UploadedFile, bool, error) {
	k := key(p.OwnerID, p.ContentHash)
	if r, ok := f.rows[k]; ok {
		return r, true, nil
	}
	r := &ent.UploadedFile{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		ContentHash: p.ContentHash,
		StoragePath: p.StoragePath,
		Filename:    p.Filename,
		FileExt:     p.FileExt,
		FileSize:    p.FileSize,
		Status:      string(constants.FileStatusPending),
		Category:    string(p.Category),
		UploadedAt:  p.UploadedAt,
	}
	f.rows[k] = r
	return r, false, nil
}

func (f *filesFake) MarkProcessing(context.Context, uuid.UUID) error { return nil }
func (f *filesFake) MarkCompleted(context.Context, uuid.UUID) error  { return nil }

func (f *filesFake) MarkFailed(_ context.Context, id uuid.UUID, msg string) error {
	f.failed[id] = msg
	return nil
}

func (f *filesFake) SetArchivePath(context.Context, uuid.UUID, string) error { return nil }

type entitiesFake struct {
	byFile map[uuid.UUID]*ent.Entity
}

func (f *entitiesFake) FindByFileID(_ context.Context, fileID uuid.UUID) (*ent.Entity, error) {
	if e, ok := f.byFile[fileID]; ok {
		return e, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *entitiesFake) CreateFromExtraction(context.Context, *repository.CreateEntityRequest) (*ent.Entity, bool, error) {
	return nil, false, errors.New("not used")
}

func (f *entitiesFake) DuplicateGroups(context.Context) ([][]dedupe.Candidate, error) {
	return nil, nil
}

func (f *entitiesFake) DeleteWithItems(context.Context, []uuid.UUID) error { return nil }

type storeFake struct {
	puts map[string][]byte
	err  error
}

func (s *storeFake) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, storage.ErrObjectNotFound
}

func (s *storeFake) Put(_ context.Context, path string, data []byte, _ string) error {
	if s.err != nil {
		return s.err
	}
	if s.puts == nil {
		s.puts = map[string][]byte{}
	}
	s.puts[path] = data
	return nil
}

func (s *storeFake) Delete(context.Context, string) error           { return nil }
func (s *storeFake) Exists(context.Context, string) (bool, error)   { return false, nil }
func (s *storeFake) Stat(context.Context, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, storage.ErrObjectNotFound
}

type dispatcherFake struct {
	calls []uuid.UUID
	err   error
}

func (d *dispatcherFake) Dispatch(_ context.Context, fileID uuid.UUID, _ constants.FileCategory, _ []string, _ string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.calls = append(d.calls, fileID)
	return "chain-" + fileID.String()[:8], nil
}

type notifierFake struct {
	notes []notify.Notification
}

func (n *notifierFake) Notify(_ context.Context, note notify.Notification) {
	n.notes = append(n.notes, note)
}

func newTestService(files *filesFake, entities *entitiesFake, store *storeFake, disp *dispatcherFake) (*Service, *notifierFake) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &notifierFake{}
	return NewService(files, entities, store, disp, notifier, logger), notifier
}

func upload(owner uuid.UUID, name string, content string) UploadRequest {
	return UploadRequest{
		OwnerID:  owner,
		Filename: name,
		Category: constants.CategoryReceipt,
		Content:  bytes.NewReader([]byte(content)),
	}
}

func TestUploadStoresAndDispatches(t *testing.T) {
	files, store, disp := newFilesFake(), &storeFake{}, &dispatcherFake{}
	svc, _ := newTestService(files, &entitiesFake{}, store, disp)

	res, err := svc.Upload(context.Background(), upload(uuid.New(), "receipt.pdf", "pdf bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.Duplicate {
		t.Fatal("fresh upload must not be a duplicate")
	}
	if res.ChainID == "" {
		t.Fatal("no chain dispatched")
	}
	if len(store.puts) != 1 {
		t.Fatalf("puts = %d", len(store.puts))
	}
	if len(disp.calls) != 1 || disp.calls[0] != res.File.ID {
		t.Fatalf("dispatch calls = %v", disp.calls)
	}
	if res.File.StoragePath == "" || res.File.FileExt != "pdf" {
		t.Errorf("file row = %+v", res.File)
	}
}

func TestUploadDuplicateShortCircuits(t *testing.T) {
	files, store, disp := newFilesFake(), &storeFake{}, &dispatcherFake{}
	entities := &entitiesFake{byFile: map[uuid.UUID]*ent.Entity{}}
	svc, notifier := newTestService(files, entities, store, disp)
	owner := uuid.New()

	first, err := svc.Upload(context.Background(), upload(owner, "receipt.pdf", "same bytes"))
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	entity := &ent.Entity{ID: uuid.New(), FileID: first.File.ID}
	entities.byFile[first.File.ID] = entity

	second, err := svc.Upload(context.Background(), upload(owner, "copy-of-receipt.pdf", "same bytes"))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if !second.Duplicate {
		t.Fatal("identical bytes from the same owner must short-circuit")
	}
	if second.File.ID != first.File.ID {
		t.Fatal("duplicate must resolve to the existing file")
	}
	if second.ExistingEntityID == nil || *second.ExistingEntityID != entity.ID {
		t.Fatalf("existing entity not linked: %v", second.ExistingEntityID)
	}
	if second.ChainID != "" || len(disp.calls) != 1 {
		t.Fatal("no new chain may run for a duplicate")
	}
	if len(notifier.notes) != 1 || notifier.notes[0].Kind != notify.KindDuplicate {
		t.Fatalf("notes = %+v, duplicate resolution must notify the owner", notifier.notes)
	}
	if notifier.notes[0].EntityID == nil || *notifier.notes[0].EntityID != entity.ID {
		t.Fatalf("notification entity = %v", notifier.notes[0].EntityID)
	}
}

func TestUploadSameBytesDifferentOwnersIndependent(t *testing.T) {
	files, store, disp := newFilesFake(), &storeFake{}, &dispatcherFake{}
	svc, _ := newTestService(files, &entitiesFake{}, store, disp)

	a, err := svc.Upload(context.Background(), upload(uuid.New(), "a.pdf", "same bytes"))
	if err != nil {
		t.Fatalf("owner A: %v", err)
	}
	b, err := svc.Upload(context.Background(), upload(uuid.New(), "b.pdf", "same bytes"))
	if err != nil {
		t.Fatalf("owner B: %v", err)
	}
	if b.Duplicate {
		t.Fatal("different owners must get independent file/entity pairs")
	}
	if a.File.ID == b.File.ID {
		t.Fatal("owners must not share rows")
	}
	if len(disp.calls) != 2 {
		t.Fatalf("dispatch calls = %d", len(disp.calls))
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newTestService(newFilesFake(), &entitiesFake{}, &storeFake{}, &dispatcherFake{})

	_, err := svc.Upload(context.Background(), upload(uuid.New(), "malware.exe", "x"))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestUploadDispatchFailureMarksFileFailed(t *testing.T) {
	files := newFilesFake()
	disp := &dispatcherFake{err: errors.New("queue down")}
	svc, _ := newTestService(files, &entitiesFake{}, &storeFake{}, disp)

	_, err := svc.Upload(context.Background(), upload(uuid.New(), "receipt.pdf", "bytes"))
	if err == nil {
		t.Fatal("dispatch failure must surface")
	}
	if len(files.failed) != 1 {
		t.Fatalf("file not marked failed: %v", files.failed)
	}
}

func TestUploadRejectsEmptyContent(t *testing.T) {
	svc, _ := newTestService(newFilesFake(), &entitiesFake{}, &storeFake{}, &dispatcherFake{})

	_, err := svc.Upload(context.Background(), upload(uuid.New(), "receipt.pdf", ""))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
