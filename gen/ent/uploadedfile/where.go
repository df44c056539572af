// Code generated by ent, DO NOT EDIT.

package uploadedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldOwnerID, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldContentHash, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStoragePath, v))
}

// ArchivePath applies equality check predicate on the "archive_path" field. It's identical to ArchivePathEQ.
func ArchivePath(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldArchivePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileSize, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStatus, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldCategory, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldErrorMessage, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUploadedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldOwnerID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldContentHash, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldStoragePath, v))
}

// ArchivePathEQ applies the EQ predicate on the "archive_path" field.
func ArchivePathEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldArchivePath, v))
}

// ArchivePathNEQ applies the NEQ predicate on the "archive_path" field.
func ArchivePathNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldArchivePath, v))
}

// ArchivePathIn applies the In predicate on the "archive_path" field.
func ArchivePathIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldArchivePath, vs...))
}

// ArchivePathNotIn applies the NotIn predicate on the "archive_path" field.
func ArchivePathNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldArchivePath, vs...))
}

// ArchivePathGT applies the GT predicate on the "archive_path" field.
func ArchivePathGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldArchivePath, v))
}

// ArchivePathGTE applies the GTE predicate on the "archive_path" field.
func ArchivePathGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldArchivePath, v))
}

// ArchivePathLT applies the LT predicate on the "archive_path" field.
func ArchivePathLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldArchivePath, v))
}

// ArchivePathLTE applies the LTE predicate on the "archive_path" field.
func ArchivePathLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldArchivePath, v))
}

// ArchivePathContains applies the Contains predicate on the "archive_path" field.
func ArchivePathContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldArchivePath, v))
}

// ArchivePathHasPrefix applies the HasPrefix predicate on the "archive_path" field.
func ArchivePathHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldArchivePath, v))
}

// ArchivePathHasSuffix applies the HasSuffix predicate on the "archive_path" field.
func ArchivePathHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldArchivePath, v))
}

// ArchivePathIsNil applies the IsNil predicate on the "archive_path" field.
func ArchivePathIsNil() predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIsNull(FieldArchivePath))
}

// ArchivePathNotNil applies the NotNil predicate on the "archive_path" field.
func ArchivePathNotNil() predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotNull(FieldArchivePath))
}

// ArchivePathEqualFold applies the EqualFold predicate on the "archive_path" field.
func ArchivePathEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldArchivePath, v))
}

// ArchivePathContainsFold applies the ContainsFold predicate on the "archive_path" field.
func ArchivePathContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldArchivePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldFileSize, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldStatus, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldCategory, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldContainsFold(FieldErrorMessage, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.UploadedFile {
	return predicate.UploadedFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalyses applies the HasEdge predicate on the "analyses" edge.
func HasAnalyses() predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysesWith applies the HasEdge predicate on the "analyses" edge with a given conditions (other predicates).
func HasAnalysesWith(preds ...predicate.AnalysisRecord) predicate.UploadedFile {
	return predicate.UploadedFile(func(s *sql.Selector) {
		step := newAnalysesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadedFile) predicate.UploadedFile {
	return predicate.UploadedFile(sql.NotPredicates(p))
}
