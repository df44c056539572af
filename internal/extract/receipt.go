package extract

import (
	"github.com/papervault/papervault/constants"
)

// ReceiptExtractor handles point-of-sale receipts.
type ReceiptExtractor struct{}

func (e *ReceiptExtractor) Type() constants.DocumentType { return constants.TypeReceipt }

func (e *ReceiptExtractor) RequiredFields() []string {
	return []string{"merchant_name", "total"}
}

func (e *ReceiptExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"merchant_name":  map[string]any{"type": "string", "minLength": 1},
			"tx_date":        dateProp(),
			"subtotal":       decimalProp(),
			"tax":            decimalProp(),
			"tip":            decimalProp(),
			"total":          decimalProp(),
			"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"payment_method": map[string]any{"type": "string"},
			"payment_last4":  map[string]any{"type": "string", "pattern": `^\d{4}$`},
			"items":          itemsProp(),
			"confidence":     confidenceProp(),
		},
		"required": []string{"merchant_name", "total"},
	}
}

func (e *ReceiptExtractor) Prompt() string {
	return "You are a receipt parser. Read the attached receipt and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). Currency must be a 3-letter ISO 4217 code. " +
		"List each purchased item with description, quantity and amount. " +
		"If taxes appear, put them in 'tax'; tips in 'tip'. " +
		"Never output null; omit fields you cannot read."
}

func (e *ReceiptExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "tx_date", &warnings)
	items := itemsField(fields, "items", &warnings)
	currency := currencyField(fields, "currency_code", &warnings)

	nested := map[string]any{
		"merchant": map[string]any{
			"name": stringField(fields, "merchant_name"),
		},
		"totals": map[string]any{
			"subtotal": moneyField(fields, "subtotal", &warnings),
			"tax":      moneyField(fields, "tax", &warnings),
			"tip":      moneyField(fields, "tip", &warnings),
			"total":    moneyField(fields, "total", &warnings),
			"currency": currency,
		},
		"payment": map[string]any{
			"method": stringField(fields, "payment_method"),
			"last4":  stringField(fields, "payment_last4"),
		},
		"date": date.Format("2006-01-02"),
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "merchant_name"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		CurrencyCode:     currency,
		TotalAmount:      moneyField(fields, "total", &warnings),
		Payload:          payload,
		Items:            items,
		Warnings:         warnings,
	}, nil
}
