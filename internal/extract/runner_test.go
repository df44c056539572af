package extract

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/common"
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

func newTestRunner(t *testing.T, payload string) (*Runner, *providerFake) {
	t.Helper()
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	fake := &providerFake{payload: json.RawMessage(payload)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(fake, registry, logger), fake
}

func TestRunReceiptNormalizesNestedShape(t *testing.T) {
	r, fake := newTestRunner(t, `{
		"merchant_name": "REWE Markt",
		"tx_date": "2026-03-14",
		"subtotal": "41.20",
		"tax": "7.83",
		"total": "49.03",
		"currency_code": "eur",
		"payment_method": "VISA",
		"payment_last4": "4242",
		"items": [
			{"description": "Milk", "quantity": 2, "unit_price": "1.19", "amount": "2.38"},
			{"description": "Bread", "amount": "3.49"}
		],
		"confidence": 0.91
	}`)

	res, err := r.Run(context.Background(), constants.TypeReceipt, ai.FileRef{Name: "files/r1"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Type != constants.TypeReceipt {
		t.Errorf("Type = %s", res.Type)
	}
	if res.Title != "REWE Markt" {
		t.Errorf("Title = %q", res.Title)
	}
	if res.Confidence != 0.91 {
		t.Errorf("Confidence = %v", res.Confidence)
	}
	if res.FallbackDateUsed {
		t.Error("real date must not be flagged as fallback")
	}
	if got := res.DocDate.Format("2006-01-02"); got != "2026-03-14" {
		t.Errorf("DocDate = %s", got)
	}
	if res.CurrencyCode != "EUR" {
		t.Errorf("CurrencyCode = %q", res.CurrencyCode)
	}
	if res.TotalAmount == nil || *res.TotalAmount != 49.03 {
		t.Errorf("TotalAmount = %v", res.TotalAmount)
	}
	if len(res.Items) != 2 {
		t.Fatalf("Items = %d", len(res.Items))
	}
	if res.Items[1].Quantity != 1 {
		t.Errorf("item without quantity should default to 1, got %v", res.Items[1].Quantity)
	}

	// flat provider fields must have been reshaped into nested groups
	var nested map[string]any
	if err := json.Unmarshal(res.Payload, &nested); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	merchant, ok := nested["merchant"].(map[string]any)
	if !ok || merchant["name"] != "REWE Markt" {
		t.Errorf("payload merchant = %v", nested["merchant"])
	}
	if _, ok := nested["totals"].(map[string]any); !ok {
		t.Error("payload missing totals group")
	}
	if fake.lastReq.Schema == nil {
		t.Error("analyze request carried no schema")
	}
}

func TestRunWarrantyMissingEndDateIsTerminal(t *testing.T) {
	r, _ := newTestRunner(t, `{
		"provider_name": "Siemens",
		"product_name": "Dishwasher SN23",
		"purchase_date": "2025-11-02"
	}`)

	_, err := r.Run(context.Background(), constants.TypeWarranty, ai.FileRef{Name: "files/w1"}, nil)
	if err == nil {
		t.Fatal("expected structural validation error")
	}
	if common.CodeOf(err) != common.CodeStructuralValidation {
		t.Fatalf("code = %s, want %s", common.CodeOf(err), common.CodeStructuralValidation)
	}
	if common.IsRetryable(err) {
		t.Fatal("validation failures must not be retried")
	}
	if !strings.Contains(err.Error(), "warranty_end_date") {
		t.Errorf("error should name the missing field, got %v", err)
	}
}

func TestRunConfidenceFallback(t *testing.T) {
	r, _ := newTestRunner(t, `{"title": "Utility notice"}`)

	res, err := r.Run(context.Background(), constants.TypeDocument, ai.FileRef{Name: "files/d1"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Confidence != FallbackConfidence {
		t.Errorf("Confidence = %v, want fallback %v", res.Confidence, FallbackConfidence)
	}
}

func TestRunMissingDateFallsBackWithWarning(t *testing.T) {
	r, _ := newTestRunner(t, `{"merchant_name": "Kiosk", "total": "5.00"}`)

	res, err := r.Run(context.Background(), constants.TypeReceipt, ai.FileRef{Name: "files/r2"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.FallbackDateUsed {
		t.Error("FallbackDateUsed should be set")
	}
	if len(res.Warnings) == 0 {
		t.Error("missing date should produce a warning")
	}
	if time.Since(res.DocDate) > 48*time.Hour {
		t.Errorf("fallback date should be recent, got %s", res.DocDate)
	}
}

func TestRunUnknownTypeIsUnsupported(t *testing.T) {
	r, _ := newTestRunner(t, `{}`)

	_, err := r.Run(context.Background(), constants.TypeUnknown, ai.FileRef{Name: "files/u1"}, nil)
	if err == nil {
		t.Fatal("expected unsupported type error")
	}
	if common.CodeOf(err) != common.CodeUnsupportedType {
		t.Fatalf("code = %s, want %s", common.CodeOf(err), common.CodeUnsupportedType)
	}
}

func TestRunSchemaMismatchIsTerminal(t *testing.T) {
	// total must match the decimal pattern
	r, _ := newTestRunner(t, `{"merchant_name": "Kiosk", "total": "lots"}`)

	_, err := r.Run(context.Background(), constants.TypeReceipt, ai.FileRef{Name: "files/r3"}, nil)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if common.CodeOf(err) != common.CodeStructuralValidation {
		t.Fatalf("code = %s", common.CodeOf(err))
	}
}

func TestRunThreadsConversationHistory(t *testing.T) {
	r, fake := newTestRunner(t, `{"title": "Letter"}`)

	history := []ai.Message{{Role: "model", Content: "classified as document"}}
	if _, err := r.Run(context.Background(), constants.TypeDocument, ai.FileRef{Name: "files/d2"}, history); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.lastReq.History) != 1 {
		t.Fatalf("history not forwarded, got %d messages", len(fake.lastReq.History))
	}
}
