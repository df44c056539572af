package constants

import (
	"strings"
)

// DocumentType is the coarse type assigned by classification and used to
// select an extractor.
type DocumentType string

const (
	TypeReceipt       DocumentType = "receipt"
	TypeInvoice       DocumentType = "invoice"
	TypeContract      DocumentType = "contract"
	TypeVoucher       DocumentType = "voucher"
	TypeWarranty      DocumentType = "warranty"
	TypeBankStatement DocumentType = "bank_statement"
	TypeDocument      DocumentType = "document"
	TypeUnknown       DocumentType = "unknown"
)

var allDocumentTypes = []DocumentType{
	TypeReceipt,
	TypeInvoice,
	TypeContract,
	TypeVoucher,
	TypeWarranty,
	TypeBankStatement,
	TypeDocument,
}

// DocumentTypeStrings returns the extractable types (unknown excluded).
func DocumentTypeStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, t := range allDocumentTypes {
		result[i] = string(t)
	}
	return result
}

// CanonicalizeType maps a free-form provider label onto the fixed enum.
// Anything unrecognized collapses to TypeUnknown.
func CanonicalizeType(input string) (DocumentType, bool) {
	if input == "" {
		return TypeUnknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	synonyms := map[string]DocumentType{
		"bill":              TypeInvoice,
		"purchase_order":    TypeInvoice,
		"agreement":         TypeContract,
		"lease":             TypeContract,
		"coupon":            TypeVoucher,
		"gift_card":         TypeVoucher,
		"guarantee":         TypeWarranty,
		"statement":         TypeBankStatement,
		"account_statement": TypeBankStatement,
		"letter":            TypeDocument,
		"misc":              TypeDocument,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return TypeUnknown, false
}
