package extract

import (
	"github.com/papervault/papervault/constants"
)

// DocumentExtractor is the catch-all for generic documents. It is still an
// explicit registry entry: unknown types never fall through to it.
type DocumentExtractor struct{}

func (e *DocumentExtractor) Type() constants.DocumentType { return constants.TypeDocument }

func (e *DocumentExtractor) RequiredFields() []string {
	return []string{"title"}
}

func (e *DocumentExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":      map[string]any{"type": "string", "minLength": 1},
			"sender":     map[string]any{"type": "string"},
			"doc_date":   dateProp(),
			"summary":    map[string]any{"type": "string"},
			"language":   map[string]any{"type": "string", "minLength": 2, "maxLength": 2},
			"confidence": confidenceProp(),
		},
		"required": []string{"title"},
	}
}

func (e *DocumentExtractor) Prompt() string {
	return "You are a document analyst. Read the attached document and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). 'title' is a short human-readable name for the document; " +
		"'summary' is at most three sentences; 'language' is the ISO 639-1 code of the document text. " +
		"Never output null; omit fields you cannot read."
}

func (e *DocumentExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "doc_date", &warnings)

	nested := map[string]any{
		"document": map[string]any{
			"title":    stringField(fields, "title"),
			"sender":   stringField(fields, "sender"),
			"summary":  stringField(fields, "summary"),
			"language": stringField(fields, "language"),
		},
		"date": date.Format("2006-01-02"),
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "title"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		Payload:          payload,
		Warnings:         warnings,
	}, nil
}
