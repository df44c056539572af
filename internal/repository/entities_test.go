package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	entitem "github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/internal/extract"
)

func seedFile(t *testing.T, client *ent.Client, owner uuid.UUID) *ent.UploadedFile {
	t.Helper()
	repo := NewUploadedFileRepository(client, testLogger())
	row, _, err := repo.UpsertByHash(context.Background(), fileParams(owner, uuid.NewString()))
	if err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return row
}

func receiptResult() *extract.Result {
	total := 49.03
	unit := 1.19
	return &extract.Result{
		Type:         constants.TypeReceipt,
		Confidence:   0.91,
		Title:        "REWE Markt",
		DocDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "EUR",
		TotalAmount:  &total,
		Payload:      json.RawMessage(`{"merchant":{"name":"REWE Markt"}}`),
		Items: []extract.Item{
			{Position: 0, Description: "Milk", Quantity: 2, UnitPrice: &unit},
			{Position: 1, Description: "Bread", Quantity: 1},
		},
		Warnings: []string{"no tax extracted"},
	}
}

func TestCreateFromExtractionPersistsItems(t *testing.T) {
	client := newTestClient(t)
	repo := NewEntityRepository(client, testLogger())
	ctx := context.Background()
	owner := uuid.New()
	file := seedFile(t, client, owner)

	row, created, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner,
		FileID:  file.ID,
		Result:  receiptResult(),
	})
	if err != nil {
		t.Fatalf("CreateFromExtraction: %v", err)
	}
	if !created {
		t.Fatal("first extraction must create")
	}
	if row.DocType != string(constants.TypeReceipt) || row.Title != "REWE Markt" {
		t.Errorf("row = %s %q", row.DocType, row.Title)
	}
	if row.TotalAmount == nil || *row.TotalAmount != 49.03 {
		t.Errorf("total = %v", row.TotalAmount)
	}

	items, err := client.EntityItem.Query().
		Where(entitem.EntityID(row.ID)).
		Order(ent.Asc(entitem.FieldPosition)).
		All(ctx)
	if err != nil {
		t.Fatalf("query items: %v", err)
	}
	if len(items) != 2 || items[0].Description != "Milk" {
		t.Fatalf("items = %v", items)
	}
}

func TestCreateFromExtractionGuardsDuplicates(t *testing.T) {
	client := newTestClient(t)
	repo := NewEntityRepository(client, testLogger())
	ctx := context.Background()
	owner := uuid.New()
	file := seedFile(t, client, owner)

	first, _, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: file.ID, Result: receiptResult(),
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	// a retried chain re-runs extraction; the result must be discarded
	again, created, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: file.ID, Result: receiptResult(),
	})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatal("second extraction for the same file must not create")
	}
	if again.ID != first.ID {
		t.Fatalf("guard returned a different entity: %s vs %s", again.ID, first.ID)
	}

	n, err := client.Entity.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("entities = %d, want exactly one per file", n)
	}
}

func TestCreateFromExtractionRollsBackOnItemFailure(t *testing.T) {
	client := newTestClient(t)
	repo := NewEntityRepository(client, testLogger())
	ctx := context.Background()
	owner := uuid.New()
	file := seedFile(t, client, owner)

	// an empty description violates the item schema, failing the bulk
	// insert after the entity row was written inside the same tx
	bad := receiptResult()
	bad.Items = append(bad.Items, extract.Item{Position: 2, Description: "", Quantity: 1})
	if _, _, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: file.ID, Result: bad,
	}); err == nil {
		t.Fatal("invalid item must fail the create")
	}

	n, err := client.Entity.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count entities: %v", err)
	}
	if n != 0 {
		t.Fatalf("entities = %d, failed create must leave nothing behind", n)
	}

	// the retried stage must not be blocked by a half-written entity
	row, created, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: file.ID, Result: receiptResult(),
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !created {
		t.Fatal("retry after rollback must create")
	}
	items, err := client.EntityItem.Query().
		Where(entitem.EntityID(row.ID)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items != 2 {
		t.Fatalf("items = %d, retry must persist the full result", items)
	}
}

func TestDeleteWithItemsIsAtomic(t *testing.T) {
	client := newTestClient(t)
	repo := NewEntityRepository(client, testLogger())
	ctx := context.Background()
	owner := uuid.New()

	keep, _, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: seedFile(t, client, owner).ID, Result: receiptResult(),
	})
	if err != nil {
		t.Fatalf("create keep: %v", err)
	}
	lose, _, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: seedFile(t, client, owner).ID, Result: receiptResult(),
	})
	if err != nil {
		t.Fatalf("create lose: %v", err)
	}

	if err := repo.DeleteWithItems(ctx, []uuid.UUID{lose.ID}); err != nil {
		t.Fatalf("DeleteWithItems: %v", err)
	}

	if _, err := client.Entity.Get(ctx, lose.ID); !ent.IsNotFound(err) {
		t.Fatalf("loser still present: %v", err)
	}
	if _, err := client.Entity.Get(ctx, keep.ID); err != nil {
		t.Fatalf("survivor gone: %v", err)
	}
	orphans, err := client.EntityItem.Query().
		Where(entitem.EntityID(lose.ID)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("loser items left behind: %d", orphans)
	}
}

func TestDuplicateGroupsEmptyInSteadyState(t *testing.T) {
	client := newTestClient(t)
	repo := NewEntityRepository(client, testLogger())
	ctx := context.Background()
	owner := uuid.New()

	if _, _, err := repo.CreateFromExtraction(ctx, &CreateEntityRequest{
		OwnerID: owner, FileID: seedFile(t, client, owner).ID, Result: receiptResult(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	groups, err := repo.DuplicateGroups(ctx)
	if err != nil {
		t.Fatalf("DuplicateGroups: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("groups = %d, want none while the unique index holds", len(groups))
	}
}
