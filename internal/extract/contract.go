package extract

import (
	"github.com/papervault/papervault/constants"
)

// ContractExtractor handles contracts and agreements.
type ContractExtractor struct{}

func (e *ContractExtractor) Type() constants.DocumentType { return constants.TypeContract }

func (e *ContractExtractor) RequiredFields() []string {
	return []string{"contract_title", "counterparty_name"}
}

func (e *ContractExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contract_title":       map[string]any{"type": "string", "minLength": 1},
			"counterparty_name":    map[string]any{"type": "string", "minLength": 1},
			"counterparty_contact": map[string]any{"type": "string"},
			"signed_date":          dateProp(),
			"start_date":           dateProp(),
			"end_date":             dateProp(),
			"notice_period":        map[string]any{"type": "string"},
			"monthly_cost":         decimalProp(),
			"currency_code":        map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"confidence":           confidenceProp(),
		},
		"required": []string{"contract_title", "counterparty_name"},
	}
}

func (e *ContractExtractor) Prompt() string {
	return "You are a contract analyst. Read the attached contract and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). 'signed_date' is when the contract was signed, " +
		"'start_date'/'end_date' bound the contract term. Capture the cancellation notice period verbatim. " +
		"Never output null; omit fields you cannot read."
}

func (e *ContractExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "signed_date", &warnings)
	start := optionalDate(fields, "start_date", &warnings)
	end := optionalDate(fields, "end_date", &warnings)
	currency := currencyField(fields, "currency_code", &warnings)

	term := map[string]any{}
	if start != nil {
		term["start_date"] = start.Format("2006-01-02")
	}
	if end != nil {
		term["end_date"] = end.Format("2006-01-02")
	}
	if np := stringField(fields, "notice_period"); np != "" {
		term["notice_period"] = np
	}

	nested := map[string]any{
		"contract": map[string]any{
			"title":       stringField(fields, "contract_title"),
			"signed_date": date.Format("2006-01-02"),
		},
		"counterparty": map[string]any{
			"name":    stringField(fields, "counterparty_name"),
			"contact": stringField(fields, "counterparty_contact"),
		},
		"term": term,
		"cost": map[string]any{
			"monthly":  moneyField(fields, "monthly_cost", &warnings),
			"currency": currency,
		},
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "contract_title"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		CurrencyCode:     currency,
		TotalAmount:      moneyField(fields, "monthly_cost", &warnings),
		Payload:          payload,
		Warnings:         warnings,
	}, nil
}
