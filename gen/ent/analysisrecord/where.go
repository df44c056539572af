// Code generated by ent, DO NOT EDIT.

package analysisrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldFileID, v))
}

// ChainID applies equality check predicate on the "chain_id" field. It's identical to ChainIDEQ.
func ChainID(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldChainID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldStage, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldDocType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldConfidence, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldOutcome, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldFileID, vs...))
}

// ChainIDEQ applies the EQ predicate on the "chain_id" field.
func ChainIDEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldChainID, v))
}

// ChainIDNEQ applies the NEQ predicate on the "chain_id" field.
func ChainIDNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldChainID, v))
}

// ChainIDIn applies the In predicate on the "chain_id" field.
func ChainIDIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldChainID, vs...))
}

// ChainIDNotIn applies the NotIn predicate on the "chain_id" field.
func ChainIDNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldChainID, vs...))
}

// ChainIDGT applies the GT predicate on the "chain_id" field.
func ChainIDGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldChainID, v))
}

// ChainIDGTE applies the GTE predicate on the "chain_id" field.
func ChainIDGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldChainID, v))
}

// ChainIDLT applies the LT predicate on the "chain_id" field.
func ChainIDLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldChainID, v))
}

// ChainIDLTE applies the LTE predicate on the "chain_id" field.
func ChainIDLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldChainID, v))
}

// ChainIDContains applies the Contains predicate on the "chain_id" field.
func ChainIDContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldChainID, v))
}

// ChainIDHasPrefix applies the HasPrefix predicate on the "chain_id" field.
func ChainIDHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldChainID, v))
}

// ChainIDHasSuffix applies the HasSuffix predicate on the "chain_id" field.
func ChainIDHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldChainID, v))
}

// ChainIDEqualFold applies the EqualFold predicate on the "chain_id" field.
func ChainIDEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldChainID, v))
}

// ChainIDContainsFold applies the ContainsFold predicate on the "chain_id" field.
func ChainIDContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldChainID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldStage, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeIsNil applies the IsNil predicate on the "doc_type" field.
func DocTypeIsNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIsNull(FieldDocType))
}

// DocTypeNotNil applies the NotNil predicate on the "doc_type" field.
func DocTypeNotNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotNull(FieldDocType))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldDocType, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotNull(FieldConfidence))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldOutcome, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.AnalysisRecord {
	return predicate.AnalysisRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.UploadedFile) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRecord) predicate.AnalysisRecord {
	return predicate.AnalysisRecord(sql.NotPredicates(p))
}
