package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/common"
)

// FallbackConfidence is assigned when the provider omits a confidence so
// downstream quality analytics stay comparable across extractors.
const FallbackConfidence float32 = 0.85

// Item is a normalized line item (receipt position, statement transaction).
type Item struct {
	Position    int      `json:"position"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

// Result is the outcome of Pass 2: the flat provider payload validated and
// reshaped into what persistence expects, plus non-fatal warnings.
type Result struct {
	Type             constants.DocumentType `json:"type"`
	Confidence       float32                `json:"confidence"`
	Title            string                 `json:"title"`
	DocDate          time.Time              `json:"doc_date"`
	FallbackDateUsed bool                   `json:"fallback_date_used"`
	CurrencyCode     string                 `json:"currency_code,omitempty"`
	TotalAmount      *float64               `json:"total_amount,omitempty"`
	Payload          json.RawMessage        `json:"payload"`
	Items            []Item                 `json:"items,omitempty"`
	Warnings         []string               `json:"warnings,omitempty"`
}

// Extractor is implemented once per document type. Schema and Prompt are
// static configuration submitted with the analyze call; Normalize turns the
// validated flat payload into the nested persistence shape.
type Extractor interface {
	Type() constants.DocumentType
	Schema() map[string]any
	Prompt() string
	RequiredFields() []string
	Normalize(fields map[string]any) (*Result, error)
}

// Runner drives one extraction: provider call, schema validation, required
// field checks, normalization, confidence threading.
type Runner struct {
	provider ai.Provider
	registry *Registry
	logger   *slog.Logger
}

func NewRunner(provider ai.Provider, registry *Registry, logger *slog.Logger) *Runner {
	return &Runner{provider: provider, registry: registry, logger: logger}
}

// Run extracts a document of the given classified type. history optionally
// carries Pass-1 conversation context to the provider.
func (r *Runner) Run(ctx context.Context, docType constants.DocumentType, fileRef ai.FileRef, history []ai.Message) (*Result, error) {
	ex, err := r.registry.Resolve(docType)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	schema := ex.Schema()

	payload, err := r.provider.Analyze(ctx, ai.AnalyzeRequest{
		FileRef: fileRef,
		Schema:  schema,
		Prompt:  ex.Prompt(),
		History: history,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call for %s: %w", docType, err)
	}

	if err := ValidateAgainstSchema(schema, payload); err != nil {
		return nil, common.NewValidationError(
			fmt.Sprintf("%s payload does not match schema", docType), err)
	}

	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, common.NewValidationError(
			fmt.Sprintf("%s payload is not a JSON object", docType), err)
	}

	if err := checkRequired(ex.RequiredFields(), fields); err != nil {
		return nil, err
	}

	result, err := ex.Normalize(fields)
	if err != nil {
		return nil, err
	}
	result.Type = ex.Type()
	result.Confidence = confidenceFrom(fields)

	r.logger.Info("extraction complete",
		"type", result.Type,
		"title", result.Title,
		"confidence", result.Confidence,
		"warnings", len(result.Warnings),
		"items", len(result.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// checkRequired enforces the extractor's required fields. A missing or
// empty required field abandons the transaction: terminal, never retried.
func checkRequired(required []string, fields map[string]any) error {
	for _, key := range required {
		v, ok := fields[key]
		if !ok || v == nil {
			return common.NewValidationError(fmt.Sprintf("required field %q missing", key), nil)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return common.NewValidationError(fmt.Sprintf("required field %q empty", key), nil)
		}
	}
	return nil
}

func confidenceFrom(fields map[string]any) float32 {
	if v, ok := fields["confidence"].(float64); ok {
		c := float32(v)
		if c < 0 {
			return 0
		}
		if c > 1 {
			return 1
		}
		return c
	}
	return FallbackConfidence
}
