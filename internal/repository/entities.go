package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/papervault/papervault/gen/ent"
	entrow "github.com/papervault/papervault/gen/ent/entity"
	entitem "github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/internal/dedupe"
	"github.com/papervault/papervault/internal/extract"
)

// CreateEntityRequest wraps the extraction output to persist for a file.
type CreateEntityRequest struct {
	OwnerID uuid.UUID
	FileID  uuid.UUID
	Result  *extract.Result
}

type EntityRepository interface {
	FindByFileID(ctx context.Context, fileID uuid.UUID) (*ent.Entity, error)
	// CreateFromExtraction persists the extraction result unless the file
	// already has an entity, in which case the result is discarded and the
	// existing entity returned (created=false). The unique file_id index
	// resolves the remaining race the same way. Entity and items land in
	// one transaction, so a failed write leaves nothing behind to trip the
	// guard on the next attempt.
	CreateFromExtraction(ctx context.Context, req *CreateEntityRequest) (*ent.Entity, bool, error)
	DuplicateGroups(ctx context.Context) ([][]dedupe.Candidate, error)
	DeleteWithItems(ctx context.Context, ids []uuid.UUID) error
}

type entityRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEntityRepository(entc *ent.Client, logger *slog.Logger) EntityRepository {
	return &entityRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *entityRepo) FindByFileID(ctx context.Context, fileID uuid.UUID) (*ent.Entity, error) {
	return r.ent.Entity.Query().
		Where(entrow.FileID(fileID)).
		Only(ctx)
}

func (r *entityRepo) CreateFromExtraction(ctx context.Context, req *CreateEntityRequest) (*ent.Entity, bool, error) {
	if existing, err := r.FindByFileID(ctx, req.FileID); err == nil {
		r.logger.Info("entity already exists for file, discarding extraction",
			"file_id", req.FileID, "entity_id", existing.ID)
		return existing, false, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}

	// entity and items commit together; a partial write would survive a
	// retry as an item-less entity behind the pre-insert guard
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}

	res := req.Result
	builder := tx.Entity.Create().
		SetOwnerID(req.OwnerID).
		SetFileID(req.FileID).
		SetDocType(string(res.Type)).
		SetTitle(res.Title).
		SetDocDate(res.DocDate).
		SetFallbackDateUsed(res.FallbackDateUsed).
		SetNillableTotalAmount(res.TotalAmount).
		SetConfidence(res.Confidence).
		SetPayload(res.Payload)
	if res.CurrencyCode != "" {
		builder = builder.SetCurrencyCode(res.CurrencyCode)
	}
	if len(res.Warnings) > 0 {
		builder = builder.SetWarnings(res.Warnings)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// a concurrent retry of the same chain won the insert
		_ = tx.Rollback()
		existing, qerr := r.FindByFileID(ctx, req.FileID)
		if qerr != nil {
			return nil, false, qerr
		}
		return existing, false, nil
	}
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create entity", "file_id", req.FileID, "doc_type", res.Type, "error", err)
		return nil, false, err
	}

	if len(res.Items) > 0 {
		builders := make([]*ent.EntityItemCreate, len(res.Items))
		for i, item := range res.Items {
			builders[i] = tx.EntityItem.Create().
				SetEntityID(row.ID).
				SetPosition(item.Position).
				SetDescription(item.Description).
				SetQuantity(item.Quantity).
				SetNillableUnitPrice(item.UnitPrice).
				SetNillableAmount(item.Amount)
		}
		if _, err := tx.EntityItem.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create entity items", "entity_id", row.ID, "error", err)
			return nil, false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit entity for file %s: %w", req.FileID, err)
	}
	return row, true, nil
}

// DuplicateGroups finds files referenced by more than one entity. Steady
// state returns nothing; groups exist only when the pre-insert guard was
// bypassed historically.
func (r *entityRepo) DuplicateGroups(ctx context.Context) ([][]dedupe.Candidate, error) {
	var counts []struct {
		FileID uuid.UUID `json:"file_id"`
		Count  int       `json:"count"`
	}
	if err := r.ent.Entity.Query().
		GroupBy(entrow.FieldFileID).
		Aggregate(ent.Count()).
		Scan(ctx, &counts); err != nil {
		return nil, fmt.Errorf("count entities per file: %w", err)
	}

	var dupFiles []uuid.UUID
	for _, c := range counts {
		if c.Count > 1 {
			dupFiles = append(dupFiles, c.FileID)
		}
	}
	if len(dupFiles) == 0 {
		return nil, nil
	}

	rows, err := r.ent.Entity.Query().
		Where(entrow.FileIDIn(dupFiles...)).
		Order(ent.Asc(entrow.FieldFileID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load duplicate entities: %w", err)
	}

	byFile := make(map[uuid.UUID][]dedupe.Candidate, len(dupFiles))
	for _, row := range rows {
		byFile[row.FileID] = append(byFile[row.FileID], dedupe.Candidate{
			EntityID:         row.ID,
			FileID:           row.FileID,
			FallbackDateUsed: row.FallbackDateUsed,
			PayloadSize:      len(row.Payload),
			CreatedAt:        row.CreatedAt,
		})
	}
	groups := make([][]dedupe.Candidate, 0, len(byFile))
	for _, fileID := range dupFiles {
		groups = append(groups, byFile[fileID])
	}
	return groups, nil
}

// DeleteWithItems removes entities and their items in one transaction.
func (r *entityRepo) DeleteWithItems(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.EntityItem.Delete().
		Where(entitem.EntityIDIn(ids...)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete entity items: %w", err)
	}
	if _, err := tx.Entity.Delete().
		Where(entrow.IDIn(ids...)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete entities: %w", err)
	}
	return tx.Commit()
}
