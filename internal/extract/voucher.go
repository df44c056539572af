package extract

import (
	"github.com/papervault/papervault/constants"
)

// VoucherExtractor handles vouchers, coupons and gift cards.
type VoucherExtractor struct{}

func (e *VoucherExtractor) Type() constants.DocumentType { return constants.TypeVoucher }

func (e *VoucherExtractor) RequiredFields() []string {
	return []string{"issuer_name"}
}

func (e *VoucherExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"issuer_name":   map[string]any{"type": "string", "minLength": 1},
			"voucher_code":  map[string]any{"type": "string"},
			"value":         decimalProp(),
			"currency_code": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"issued_date":   dateProp(),
			"expires_on":    dateProp(),
			"redeemable_at": map[string]any{"type": "string"},
			"confidence":    confidenceProp(),
		},
		"required": []string{"issuer_name"},
	}
}

func (e *VoucherExtractor) Prompt() string {
	return "You are a voucher parser. Read the attached voucher or gift card and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). Capture the voucher code exactly as printed, including separators. " +
		"'expires_on' is the last valid day. Never output null; omit fields you cannot read."
}

func (e *VoucherExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "issued_date", &warnings)
	expires := optionalDate(fields, "expires_on", &warnings)
	currency := currencyField(fields, "currency_code", &warnings)

	voucher := map[string]any{
		"code":  stringField(fields, "voucher_code"),
		"value": moneyField(fields, "value", &warnings),
	}
	if expires != nil {
		voucher["expires_on"] = expires.Format("2006-01-02")
	}
	if at := stringField(fields, "redeemable_at"); at != "" {
		voucher["redeemable_at"] = at
	}

	nested := map[string]any{
		"issuer": map[string]any{
			"name": stringField(fields, "issuer_name"),
		},
		"voucher":  voucher,
		"currency": currency,
		"date":     date.Format("2006-01-02"),
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "issuer_name"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		CurrencyCode:     currency,
		TotalAmount:      moneyField(fields, "value", &warnings),
		Payload:          payload,
		Warnings:         warnings,
	}, nil
}
