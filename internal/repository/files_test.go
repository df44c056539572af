package repository

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	"github.com/papervault/papervault/internal/dedupe"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fileParams(ownerID uuid.UUID, content string) CreateFileParams {
	sum, _ := dedupe.HashBytes([]byte(content))
	return CreateFileParams{
		OwnerID:     ownerID,
		ContentHash: sum,
		StoragePath: "uploads/" + ownerID.String() + "/doc.pdf",
		Filename:    "doc.pdf",
		FileExt:     "pdf",
		FileSize:    len(content),
		Category:    constants.CategoryReceipt,
		UploadedAt:  time.Now().UTC(),
	}
}

func TestUpsertByHashDedupsPerOwner(t *testing.T) {
	repo := NewUploadedFileRepository(newTestClient(t), testLogger())
	ctx := context.Background()
	owner := uuid.New()

	first, dedup, err := repo.UpsertByHash(ctx, fileParams(owner, "same bytes"))
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if dedup {
		t.Fatal("first upload must not be a duplicate")
	}

	second, dedup, err := repo.UpsertByHash(ctx, fileParams(owner, "same bytes"))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !dedup {
		t.Fatal("identical bytes from the same owner must dedup")
	}
	if second.ID != first.ID {
		t.Fatalf("dedup returned a different row: %s vs %s", second.ID, first.ID)
	}

	// identical bytes from a different owner are an independent pair
	other, dedup, err := repo.UpsertByHash(ctx, fileParams(uuid.New(), "same bytes"))
	if err != nil {
		t.Fatalf("other-owner upsert: %v", err)
	}
	if dedup {
		t.Fatal("different owner must not dedup against another owner's file")
	}
	if other.ID == first.ID {
		t.Fatal("different owner must get a new row")
	}
}

func TestStatusTransitions(t *testing.T) {
	client := newTestClient(t)
	repo := NewUploadedFileRepository(client, testLogger())
	ctx := context.Background()

	row, _, err := repo.UpsertByHash(ctx, fileParams(uuid.New(), "bytes"))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if row.Status != string(constants.FileStatusPending) {
		t.Fatalf("new file status = %s", row.Status)
	}

	if err := repo.MarkProcessing(ctx, row.ID); err != nil {
		t.Fatalf("MarkProcessing: %v", err)
	}
	if err := repo.MarkFailed(ctx, row.ID, "provider gave up"); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(constants.FileStatusFailed) {
		t.Errorf("status = %s", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "provider gave up" {
		t.Errorf("error_message = %v", got.ErrorMessage)
	}
}

func TestGetByOwnerAndHashNotFound(t *testing.T) {
	repo := NewUploadedFileRepository(newTestClient(t), testLogger())
	sum, _ := dedupe.HashBytes([]byte("never uploaded"))

	_, err := repo.GetByOwnerAndHash(context.Background(), uuid.New(), sum)
	if !ent.IsNotFound(err) {
		t.Fatalf("err = %v, want ent not-found", err)
	}
}
