package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
)

// Thresholds driving whether Pass 2 proceeds or the file is parked as
// unknown for later analysis.
const (
	DefaultValidThreshold   = 0.70
	HighConfidenceThreshold = 0.90
	LowConfidenceThreshold  = 0.50
)

// Result is the outcome of Pass 1. Type is always a member of the fixed
// enum or unknown, confidence always within [0,1], whatever the provider
// returned.
type Result struct {
	Type       constants.DocumentType `json:"type"`
	Confidence float32                `json:"confidence"`
	Reasoning  string                 `json:"reasoning"`
	Raw        json.RawMessage        `json:"raw,omitempty"`
}

// IsValid reports whether the classification clears the threshold and
// produced a usable type.
func (r Result) IsValid(threshold float32) bool {
	return r.Confidence >= threshold && r.Type != constants.TypeUnknown
}

// HighConfidence reports a classification strong enough to skip review.
func (r Result) HighConfidence() bool {
	return r.Confidence >= HighConfidenceThreshold
}

// LowConfidence reports a classification weak enough to flag for review.
func (r Result) LowConfidence() bool {
	return r.Confidence < LowConfidenceThreshold
}

// Classifier performs the single Pass-1 provider call per chain.
type Classifier struct {
	provider ai.Provider
	logger   *slog.Logger
}

func NewClassifier(provider ai.Provider, logger *slog.Logger) *Classifier {
	return &Classifier{provider: provider, logger: logger}
}

// rawClassification is the shallow payload the provider is asked for.
type rawClassification struct {
	Type       string   `json:"type"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// Classify sends the file to the provider once and normalizes whatever
// comes back into a Result. Hints (filename, upload category) sharpen the
// prompt but never constrain the outcome.
func (c *Classifier) Classify(ctx context.Context, fileRef ai.FileRef, hints Hints) (Result, error) {
	start := time.Now()

	payload, err := c.provider.Analyze(ctx, ai.AnalyzeRequest{
		FileRef: fileRef,
		Schema:  classificationSchema(),
		Prompt:  buildClassificationPrompt(hints),
	})
	if err != nil {
		return Result{}, fmt.Errorf("classification call: %w", err)
	}

	var raw rawClassification
	if err := json.Unmarshal(payload, &raw); err != nil {
		// Malformed provider output is not fatal for Pass 1: park as unknown.
		c.logger.Warn("classification payload malformed, parking as unknown",
			"error", err, "payload_bytes", len(payload))
		return Result{Type: constants.TypeUnknown, Confidence: 0, Raw: payload}, nil
	}

	docType, recognized := constants.CanonicalizeType(raw.Type)
	if !recognized && raw.Type != "" {
		c.logger.Warn("classifier returned unrecognized type", "label", raw.Type)
	}

	confidence := float32(0)
	if raw.Confidence != nil {
		confidence = clamp01(float32(*raw.Confidence))
	}

	result := Result{
		Type:       docType,
		Confidence: confidence,
		Reasoning:  raw.Reasoning,
		Raw:        payload,
	}

	c.logger.Info("classification complete",
		"type", result.Type,
		"confidence", result.Confidence,
		"recognized", recognized,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
