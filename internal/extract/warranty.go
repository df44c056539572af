package extract

import (
	"github.com/papervault/papervault/constants"
)

// WarrantyExtractor handles warranty certificates and guarantee cards.
type WarrantyExtractor struct{}

func (e *WarrantyExtractor) Type() constants.DocumentType { return constants.TypeWarranty }

// A warranty without provider, product and end date is unusable, so all
// three are hard requirements.
func (e *WarrantyExtractor) RequiredFields() []string {
	return []string{"provider_name", "product_name", "warranty_end_date"}
}

func (e *WarrantyExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"provider_name":       map[string]any{"type": "string", "minLength": 1},
			"provider_contact":    map[string]any{"type": "string"},
			"product_name":        map[string]any{"type": "string", "minLength": 1},
			"serial_number":       map[string]any{"type": "string"},
			"purchase_date":       dateProp(),
			"warranty_start_date": dateProp(),
			"warranty_end_date":   dateProp(),
			"confidence":          confidenceProp(),
		},
		"required": []string{"provider_name", "product_name", "warranty_end_date"},
	}
}

func (e *WarrantyExtractor) Prompt() string {
	return "You are a warranty parser. Read the attached warranty document and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). 'warranty_end_date' is when coverage expires; derive it from the " +
		"purchase date plus the stated warranty term if it is not printed explicitly. " +
		"Never output null; omit fields you cannot read."
}

func (e *WarrantyExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "purchase_date", &warnings)
	start := optionalDate(fields, "warranty_start_date", &warnings)
	end := optionalDate(fields, "warranty_end_date", &warnings)

	coverage := map[string]any{}
	if start != nil {
		coverage["start_date"] = start.Format("2006-01-02")
	}
	if end != nil {
		coverage["end_date"] = end.Format("2006-01-02")
	}

	nested := map[string]any{
		"provider": map[string]any{
			"name":    stringField(fields, "provider_name"),
			"contact": stringField(fields, "provider_contact"),
		},
		"product": map[string]any{
			"name":          stringField(fields, "product_name"),
			"serial_number": stringField(fields, "serial_number"),
		},
		"coverage": coverage,
		"date":     date.Format("2006-01-02"),
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "product_name"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		Payload:          payload,
		Warnings:         warnings,
	}, nil
}
