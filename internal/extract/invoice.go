package extract

import (
	"github.com/papervault/papervault/constants"
)

// InvoiceExtractor handles vendor invoices and bills.
type InvoiceExtractor struct{}

func (e *InvoiceExtractor) Type() constants.DocumentType { return constants.TypeInvoice }

func (e *InvoiceExtractor) RequiredFields() []string {
	return []string{"vendor_name", "total"}
}

func (e *InvoiceExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor_name":    map[string]any{"type": "string", "minLength": 1},
			"vendor_address": map[string]any{"type": "string"},
			"invoice_number": map[string]any{"type": "string"},
			"issue_date":     dateProp(),
			"due_date":       dateProp(),
			"subtotal":       decimalProp(),
			"tax":            decimalProp(),
			"total":          decimalProp(),
			"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"items":          itemsProp(),
			"confidence":     confidenceProp(),
		},
		"required": []string{"vendor_name", "total"},
	}
}

func (e *InvoiceExtractor) Prompt() string {
	return "You are an invoice parser. Read the attached invoice and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). 'issue_date' is the invoice date, 'due_date' the payment deadline. " +
		"Capture the invoice number exactly as printed. " +
		"Never output null; omit fields you cannot read."
}

func (e *InvoiceExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "issue_date", &warnings)
	due := optionalDate(fields, "due_date", &warnings)
	currency := currencyField(fields, "currency_code", &warnings)
	items := itemsField(fields, "items", &warnings)

	invoice := map[string]any{
		"number":     stringField(fields, "invoice_number"),
		"issue_date": date.Format("2006-01-02"),
	}
	if due != nil {
		invoice["due_date"] = due.Format("2006-01-02")
	}

	nested := map[string]any{
		"vendor": map[string]any{
			"name":    stringField(fields, "vendor_name"),
			"address": stringField(fields, "vendor_address"),
		},
		"invoice": invoice,
		"totals": map[string]any{
			"subtotal": moneyField(fields, "subtotal", &warnings),
			"tax":      moneyField(fields, "tax", &warnings),
			"total":    moneyField(fields, "total", &warnings),
			"currency": currency,
		},
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "vendor_name"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		CurrencyCode:     currency,
		TotalAmount:      moneyField(fields, "total", &warnings),
		Payload:          payload,
		Items:            items,
		Warnings:         warnings,
	}, nil
}
