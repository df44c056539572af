package classify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
)

type providerFake struct {
	payload json.RawMessage
	err     error
	lastReq ai.AnalyzeRequest
}

func (f *providerFake) UploadFile(context.Context, string, string) (ai.FileRef, error) {
	return ai.FileRef{}, nil
}

func (f *providerFake) Analyze(_ context.Context, req ai.AnalyzeRequest) (json.RawMessage, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func (f *providerFake) DeleteFile(context.Context, ai.FileRef) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassifyNormalizesProviderOutput(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		wantType       constants.DocumentType
		wantConfidence float32
	}{
		{
			name:           "clean receipt",
			payload:        `{"type":"receipt","confidence":0.92,"reasoning":"itemized totals"}`,
			wantType:       constants.TypeReceipt,
			wantConfidence: 0.92,
		},
		{
			name:           "synonym label",
			payload:        `{"type":"Purchase Order","confidence":0.8}`,
			wantType:       constants.TypeInvoice,
			wantConfidence: 0.8,
		},
		{
			name:           "unrecognized label collapses to unknown",
			payload:        `{"type":"shopping_list","confidence":0.75}`,
			wantType:       constants.TypeUnknown,
			wantConfidence: 0.75,
		},
		{
			name:           "confidence above one clamped",
			payload:        `{"type":"warranty","confidence":3.5}`,
			wantType:       constants.TypeWarranty,
			wantConfidence: 1,
		},
		{
			name:           "negative confidence clamped",
			payload:        `{"type":"contract","confidence":-0.2}`,
			wantType:       constants.TypeContract,
			wantConfidence: 0,
		},
		{
			name:           "missing confidence defaults to zero",
			payload:        `{"type":"voucher"}`,
			wantType:       constants.TypeVoucher,
			wantConfidence: 0,
		},
		{
			name:           "malformed payload parks as unknown",
			payload:        `this is not json`,
			wantType:       constants.TypeUnknown,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&providerFake{payload: json.RawMessage(tt.payload)}, testLogger())
			got, err := c.Classify(context.Background(), ai.FileRef{Name: "files/x"}, Hints{})
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", got.Type, tt.wantType)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifySendsSchemaAndHints(t *testing.T) {
	fake := &providerFake{payload: json.RawMessage(`{"type":"receipt","confidence":0.9}`)}
	c := NewClassifier(fake, testLogger())

	_, err := c.Classify(context.Background(), ai.FileRef{Name: "files/x"}, Hints{
		Filename:       "IMG_2041.jpg",
		UploadCategory: "receipt",
	})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if fake.lastReq.Schema == nil {
		t.Fatal("classification request carried no schema")
	}
	if fake.lastReq.Prompt == "" {
		t.Fatal("classification request carried no prompt")
	}
}

func TestResultPredicates(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		valid    bool
		high     bool
		low      bool
	}{
		{"strong receipt", Result{Type: constants.TypeReceipt, Confidence: 0.92}, true, true, false},
		{"borderline valid", Result{Type: constants.TypeInvoice, Confidence: 0.70}, true, false, false},
		{"below threshold", Result{Type: constants.TypeContract, Confidence: 0.60}, false, false, false},
		{"weak", Result{Type: constants.TypeDocument, Confidence: 0.30}, false, false, true},
		{"confident unknown still invalid", Result{Type: constants.TypeUnknown, Confidence: 0.95}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsValid(DefaultValidThreshold); got != tt.valid {
				t.Errorf("IsValid = %v, want %v", got, tt.valid)
			}
			if got := tt.result.HighConfidence(); got != tt.high {
				t.Errorf("HighConfidence = %v, want %v", got, tt.high)
			}
			if got := tt.result.LowConfidence(); got != tt.low {
				t.Errorf("LowConfidence = %v, want %v", got, tt.low)
			}
		})
	}
}
