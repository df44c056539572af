package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/gen/ent"
	entfile "github.com/papervault/papervault/gen/ent/uploadedfile"
)

// CreateFileParams carries everything a new uploaded file row needs.
type CreateFileParams struct {
	OwnerID     uuid.UUID
	ContentHash []byte
	StoragePath string
	Filename    string
	FileExt     string
	FileSize    int
	Category    constants.FileCategory
	UploadedAt  time.Time
}

type UploadedFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.UploadedFile, error)
	GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*ent.UploadedFile, error)
	// UpsertByHash returns the existing row (dedup=true) when the owner
	// already uploaded identical bytes, otherwise creates a new row. The
	// unique (owner_id, content_hash) index is the final race guard: a
	// concurrent insert loses the race and is resolved by re-query.
	UpsertByHash(ctx context.Context, p CreateFileParams) (*ent.UploadedFile, bool, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	SetArchivePath(ctx context.Context, id uuid.UUID, archivePath string) error
}

type uploadedFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUploadedFileRepository(entc *ent.Client, logger *slog.Logger) UploadedFileRepository {
	return &uploadedFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *uploadedFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.UploadedFile, error) {
	return r.ent.UploadedFile.Get(ctx, id)
}

func (r *uploadedFileRepo) GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*ent.UploadedFile, error) {
	return r.ent.UploadedFile.Query().
		Where(
			entfile.OwnerID(ownerID),
			entfile.ContentHash(hash),
		).Only(ctx)
}

func (r *uploadedFileRepo) UpsertByHash(ctx context.Context, p CreateFileParams) (*ent.UploadedFile, bool, error) {
	if existing, err := r.GetByOwnerAndHash(ctx, p.OwnerID, p.ContentHash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("hash lookup failed", "owner_id", p.OwnerID, "error", err)
		return nil, false, err
	}

	row, err := r.ent.UploadedFile.Create().
		SetOwnerID(p.OwnerID).
		SetContentHash(p.ContentHash).
		SetStoragePath(p.StoragePath).
		SetFilename(p.Filename).
		SetFileExt(p.FileExt).
		SetFileSize(p.FileSize).
		SetCategory(string(p.Category)).
		SetUploadedAt(p.UploadedAt).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// lost the insert race against a concurrent identical upload
		existing, qerr := r.GetByOwnerAndHash(ctx, p.OwnerID, p.ContentHash)
		if qerr != nil {
			return nil, false, qerr
		}
		return existing, true, nil
	}
	if err != nil {
		r.logger.Error("failed to create uploaded file", "owner_id", p.OwnerID, "filename", p.Filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *uploadedFileRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.FileStatusProcessing, "")
}

func (r *uploadedFileRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.FileStatusCompleted, "")
}

func (r *uploadedFileRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	return r.setStatus(ctx, id, constants.FileStatusFailed, message)
}

func (r *uploadedFileRepo) setStatus(ctx context.Context, id uuid.UUID, status constants.FileStatus, message string) error {
	upd := r.ent.UploadedFile.UpdateOneID(id).SetStatus(string(status))
	if message != "" {
		upd = upd.SetErrorMessage(message)
	}
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("failed to update file status", "file_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *uploadedFileRepo) SetArchivePath(ctx context.Context, id uuid.UUID, archivePath string) error {
	return r.ent.UploadedFile.UpdateOneID(id).SetArchivePath(archivePath).Exec(ctx)
}
