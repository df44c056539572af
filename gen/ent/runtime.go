// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/papervault/papervault/db/ent/schema"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisrecordFields := schema.AnalysisRecord{}.Fields()
	_ = analysisrecordFields
	// analysisrecordDescChainID is the schema descriptor for chain_id field.
	analysisrecordDescChainID := analysisrecordFields[2].Descriptor()
	// analysisrecord.ChainIDValidator is a validator for the "chain_id" field. It is called by the builders before save.
	analysisrecord.ChainIDValidator = analysisrecordDescChainID.Validators[0].(func(string) error)
	// analysisrecordDescStage is the schema descriptor for stage field.
	analysisrecordDescStage := analysisrecordFields[3].Descriptor()
	// analysisrecord.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	analysisrecord.StageValidator = func() func(string) error {
		validators := analysisrecordDescStage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(stage string) error {
			for _, fn := range fns {
				if err := fn(stage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisrecordDescOutcome is the schema descriptor for outcome field.
	analysisrecordDescOutcome := analysisrecordFields[6].Descriptor()
	// analysisrecord.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	analysisrecord.OutcomeValidator = func() func(string) error {
		validators := analysisrecordDescOutcome.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(outcome string) error {
			for _, fn := range fns {
				if err := fn(outcome); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisrecordDescCreatedAt is the schema descriptor for created_at field.
	analysisrecordDescCreatedAt := analysisrecordFields[8].Descriptor()
	// analysisrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisrecord.DefaultCreatedAt = analysisrecordDescCreatedAt.Default.(func() time.Time)
	// analysisrecordDescID is the schema descriptor for id field.
	analysisrecordDescID := analysisrecordFields[0].Descriptor()
	// analysisrecord.DefaultID holds the default value on creation for the id field.
	analysisrecord.DefaultID = analysisrecordDescID.Default.(func() uuid.UUID)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescDocType is the schema descriptor for doc_type field.
	entityDescDocType := entityFields[3].Descriptor()
	// entity.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	entity.DocTypeValidator = func() func(string) error {
		validators := entityDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityDescTitle is the schema descriptor for title field.
	entityDescTitle := entityFields[4].Descriptor()
	// entity.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	entity.TitleValidator = entityDescTitle.Validators[0].(func(string) error)
	// entityDescFallbackDateUsed is the schema descriptor for fallback_date_used field.
	entityDescFallbackDateUsed := entityFields[6].Descriptor()
	// entity.DefaultFallbackDateUsed holds the default value on creation for the fallback_date_used field.
	entity.DefaultFallbackDateUsed = entityDescFallbackDateUsed.Default.(bool)
	// entityDescCurrencyCode is the schema descriptor for currency_code field.
	entityDescCurrencyCode := entityFields[7].Descriptor()
	// entity.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	entity.CurrencyCodeValidator = func() func(string) error {
		validators := entityDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[12].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityFields[13].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// entityDescID is the schema descriptor for id field.
	entityDescID := entityFields[0].Descriptor()
	// entity.DefaultID holds the default value on creation for the id field.
	entity.DefaultID = entityDescID.Default.(func() uuid.UUID)
	entityitemFields := schema.EntityItem{}.Fields()
	_ = entityitemFields
	// entityitemDescPosition is the schema descriptor for position field.
	entityitemDescPosition := entityitemFields[2].Descriptor()
	// entityitem.DefaultPosition holds the default value on creation for the position field.
	entityitem.DefaultPosition = entityitemDescPosition.Default.(int)
	// entityitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	entityitem.PositionValidator = entityitemDescPosition.Validators[0].(func(int) error)
	// entityitemDescDescription is the schema descriptor for description field.
	entityitemDescDescription := entityitemFields[3].Descriptor()
	// entityitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	entityitem.DescriptionValidator = entityitemDescDescription.Validators[0].(func(string) error)
	// entityitemDescQuantity is the schema descriptor for quantity field.
	entityitemDescQuantity := entityitemFields[4].Descriptor()
	// entityitem.DefaultQuantity holds the default value on creation for the quantity field.
	entityitem.DefaultQuantity = entityitemDescQuantity.Default.(float64)
	// entityitemDescID is the schema descriptor for id field.
	entityitemDescID := entityitemFields[0].Descriptor()
	// entityitem.DefaultID holds the default value on creation for the id field.
	entityitem.DefaultID = entityitemDescID.Default.(func() uuid.UUID)
	uploadedfileFields := schema.UploadedFile{}.Fields()
	_ = uploadedfileFields
	// uploadedfileDescContentHash is the schema descriptor for content_hash field.
	uploadedfileDescContentHash := uploadedfileFields[2].Descriptor()
	// uploadedfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	uploadedfile.ContentHashValidator = uploadedfileDescContentHash.Validators[0].(func([]byte) error)
	// uploadedfileDescStoragePath is the schema descriptor for storage_path field.
	uploadedfileDescStoragePath := uploadedfileFields[3].Descriptor()
	// uploadedfile.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	uploadedfile.StoragePathValidator = uploadedfileDescStoragePath.Validators[0].(func(string) error)
	// uploadedfileDescFilename is the schema descriptor for filename field.
	uploadedfileDescFilename := uploadedfileFields[5].Descriptor()
	// uploadedfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	uploadedfile.FilenameValidator = uploadedfileDescFilename.Validators[0].(func(string) error)
	// uploadedfileDescFileExt is the schema descriptor for file_ext field.
	uploadedfileDescFileExt := uploadedfileFields[6].Descriptor()
	// uploadedfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	uploadedfile.FileExtValidator = uploadedfileDescFileExt.Validators[0].(func(string) error)
	// uploadedfileDescFileSize is the schema descriptor for file_size field.
	uploadedfileDescFileSize := uploadedfileFields[7].Descriptor()
	// uploadedfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	uploadedfile.FileSizeValidator = uploadedfileDescFileSize.Validators[0].(func(int) error)
	// uploadedfileDescStatus is the schema descriptor for status field.
	uploadedfileDescStatus := uploadedfileFields[8].Descriptor()
	// uploadedfile.DefaultStatus holds the default value on creation for the status field.
	uploadedfile.DefaultStatus = uploadedfileDescStatus.Default.(string)
	// uploadedfile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadedfile.StatusValidator = uploadedfileDescStatus.Validators[0].(func(string) error)
	// uploadedfileDescCategory is the schema descriptor for category field.
	uploadedfileDescCategory := uploadedfileFields[9].Descriptor()
	// uploadedfile.DefaultCategory holds the default value on creation for the category field.
	uploadedfile.DefaultCategory = uploadedfileDescCategory.Default.(string)
	// uploadedfile.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	uploadedfile.CategoryValidator = uploadedfileDescCategory.Validators[0].(func(string) error)
	// uploadedfileDescUploadedAt is the schema descriptor for uploaded_at field.
	uploadedfileDescUploadedAt := uploadedfileFields[11].Descriptor()
	// uploadedfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	uploadedfile.DefaultUploadedAt = uploadedfileDescUploadedAt.Default.(func() time.Time)
	// uploadedfileDescID is the schema descriptor for id field.
	uploadedfileDescID := uploadedfileFields[0].Descriptor()
	// uploadedfile.DefaultID holds the default value on creation for the id field.
	uploadedfile.DefaultID = uploadedfileDescID.Default.(func() uuid.UUID)
}
