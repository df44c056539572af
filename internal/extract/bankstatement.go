package extract

import (
	"github.com/papervault/papervault/constants"
)

// BankStatementExtractor handles periodic account statements. Statement
// transactions are normalized into line items.
type BankStatementExtractor struct{}

func (e *BankStatementExtractor) Type() constants.DocumentType { return constants.TypeBankStatement }

func (e *BankStatementExtractor) RequiredFields() []string {
	return []string{"bank_name", "period_end"}
}

func (e *BankStatementExtractor) Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bank_name":       map[string]any{"type": "string", "minLength": 1},
			"account_last4":   map[string]any{"type": "string", "pattern": `^\d{4}$`},
			"period_start":    dateProp(),
			"period_end":      dateProp(),
			"opening_balance": decimalProp(),
			"closing_balance": decimalProp(),
			"currency_code":   map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"transactions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string", "minLength": 1},
						"date":        dateProp(),
						"amount":      decimalProp(),
					},
					"required": []string{"description", "amount"},
				},
			},
			"confidence": confidenceProp(),
		},
		"required": []string{"bank_name", "period_end"},
	}
}

func (e *BankStatementExtractor) Prompt() string {
	return "You are a bank statement parser. Read the attached statement and return ONLY JSON matching the provided schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD). 'period_start'/'period_end' bound the statement period. " +
		"List every transaction with its booking date, description and signed amount (negative for debits). " +
		"Report only the last 4 digits of the account number. Never output null; omit fields you cannot read."
}

func (e *BankStatementExtractor) Normalize(fields map[string]any) (*Result, error) {
	var warnings []string

	date, fellBack := parseDate(fields, "period_end", &warnings)
	start := optionalDate(fields, "period_start", &warnings)
	currency := currencyField(fields, "currency_code", &warnings)

	period := map[string]any{
		"end": date.Format("2006-01-02"),
	}
	if start != nil {
		period["start"] = start.Format("2006-01-02")
	}

	items := transactionItems(fields, &warnings)

	nested := map[string]any{
		"bank": map[string]any{
			"name": stringField(fields, "bank_name"),
		},
		"account": map[string]any{
			"last4": stringField(fields, "account_last4"),
		},
		"period": period,
		"balances": map[string]any{
			"opening":  moneyField(fields, "opening_balance", &warnings),
			"closing":  moneyField(fields, "closing_balance", &warnings),
			"currency": currency,
		},
	}
	payload, err := marshalPayload(nested)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:            stringField(fields, "bank_name"),
		DocDate:          date,
		FallbackDateUsed: fellBack,
		CurrencyCode:     currency,
		TotalAmount:      moneyField(fields, "closing_balance", &warnings),
		Payload:          payload,
		Items:            items,
		Warnings:         warnings,
	}, nil
}

// transactionItems maps statement transactions onto line items, folding
// the booking date into the description.
func transactionItems(fields map[string]any, warnings *[]string) []Item {
	raw, ok := fields["transactions"].([]any)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			*warnings = append(*warnings, "transaction malformed, dropped")
			continue
		}
		desc := stringField(m, "description")
		if desc == "" {
			*warnings = append(*warnings, "transaction without description, dropped")
			continue
		}
		if d := stringField(m, "date"); d != "" {
			desc = d + " " + desc
		}
		item := Item{Description: desc, Quantity: 1, Position: i}
		item.Amount = moneyField(m, "amount", warnings)
		items = append(items, item)
	}
	return items
}
