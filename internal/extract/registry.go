package extract

import (
	"fmt"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/common"
)

// Registry maps classified types to extractor instances. Built once at
// process start and injected; there is no ambient lookup.
type Registry struct {
	byType map[constants.DocumentType]Extractor
}

// NewRegistry builds a registry from the given extractors. Duplicate types
// and over-deep schemas are construction errors: both are programmer
// mistakes, not runtime conditions.
func NewRegistry(extractors ...Extractor) (*Registry, error) {
	r := &Registry{byType: make(map[constants.DocumentType]Extractor, len(extractors))}
	for _, ex := range extractors {
		t := ex.Type()
		if _, dup := r.byType[t]; dup {
			return nil, fmt.Errorf("duplicate extractor for type %q", t)
		}
		if depth := schemaDepth(ex.Schema()); depth > MaxSchemaDepth {
			return nil, fmt.Errorf("extractor %q schema nests %d levels, max %d", t, depth, MaxSchemaDepth)
		}
		r.byType[t] = ex
	}
	return r, nil
}

// DefaultRegistry wires one extractor per supported document type.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(
		&ReceiptExtractor{},
		&InvoiceExtractor{},
		&ContractExtractor{},
		&VoucherExtractor{},
		&WarrantyExtractor{},
		&BankStatementExtractor{},
		&DocumentExtractor{},
	)
}

// Resolve returns the extractor for a classified type. An unrecognized
// type is a hard error, never silently defaulted to a generic extractor.
func (r *Registry) Resolve(docType constants.DocumentType) (Extractor, error) {
	ex, ok := r.byType[docType]
	if !ok {
		return nil, common.NewUnsupportedTypeError(string(docType))
	}
	return ex, nil
}

// Types lists the registered types, for diagnostics.
func (r *Registry) Types() []constants.DocumentType {
	out := make([]constants.DocumentType, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	return out
}
