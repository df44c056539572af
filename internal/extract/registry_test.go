package extract

import (
	"strings"
	"testing"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/common"
)

type deepSchemaExtractor struct{ DocumentExtractor }

func (e *deepSchemaExtractor) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"b": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"c": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"d": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestDefaultRegistryCoversAllTypes(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	for _, dt := range []constants.DocumentType{
		constants.TypeReceipt,
		constants.TypeInvoice,
		constants.TypeContract,
		constants.TypeVoucher,
		constants.TypeWarranty,
		constants.TypeBankStatement,
		constants.TypeDocument,
	} {
		ex, err := r.Resolve(dt)
		if err != nil {
			t.Errorf("Resolve(%s): %v", dt, err)
			continue
		}
		if ex.Type() != dt {
			t.Errorf("Resolve(%s) returned extractor for %s", dt, ex.Type())
		}
	}
}

func TestResolveUnknownTypeFails(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	_, err = r.Resolve(constants.TypeUnknown)
	if err == nil {
		t.Fatal("unknown type must not resolve")
	}
	if common.CodeOf(err) != common.CodeUnsupportedType {
		t.Errorf("code = %s", common.CodeOf(err))
	}
	if common.IsRetryable(err) {
		t.Error("unsupported type must be terminal")
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(&ReceiptExtractor{}, &ReceiptExtractor{})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate-type error", err)
	}
}

func TestNewRegistryRejectsDeepSchemas(t *testing.T) {
	_, err := NewRegistry(&deepSchemaExtractor{})
	if err == nil || !strings.Contains(err.Error(), "nests") {
		t.Fatalf("err = %v, want depth error", err)
	}
}
