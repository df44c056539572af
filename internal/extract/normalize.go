package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts the provider is allowed to use, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02.01.2006",
	"01/02/2006",
}

// parseDate parses a provider date string. When the value is missing or
// unparseable the fallback date (now, day precision) is used and a warning
// recorded; entities carrying a fallback date are deprioritized by the
// duplicate-cleanup survivor score.
func parseDate(fields map[string]any, key string, warnings *[]string) (time.Time, bool) {
	raw := stringField(fields, key)
	if raw == "" {
		*warnings = append(*warnings, fmt.Sprintf("no %s extracted, using fallback date", key))
		return fallbackDate(), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, false
		}
	}
	*warnings = append(*warnings, fmt.Sprintf("unparseable %s %q, using fallback date", key, raw))
	return fallbackDate(), true
}

// optionalDate parses a date that may legitimately be absent. Absence is
// not warned about; an unparseable value is.
func optionalDate(fields map[string]any, key string, warnings *[]string) *time.Time {
	raw := stringField(fields, key)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	*warnings = append(*warnings, fmt.Sprintf("unparseable %s %q, dropped", key, raw))
	return nil
}

func fallbackDate() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// moneyField parses a decimal carried as string or number. Returns nil
// when absent or unparseable (with a warning).
func moneyField(fields map[string]any, key string, warnings *[]string) *float64 {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	*warnings = append(*warnings, fmt.Sprintf("unparseable amount in %q, dropped", key))
	return nil
}

func currencyField(fields map[string]any, key string, warnings *[]string) string {
	c := strings.ToUpper(stringField(fields, key))
	if c == "" {
		return ""
	}
	if len(c) != 3 {
		*warnings = append(*warnings, fmt.Sprintf("invalid currency code %q, dropped", c))
		return ""
	}
	return c
}

// itemsField normalizes the flat items array the schemas share.
func itemsField(fields map[string]any, key string, warnings *[]string) []Item {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("item %d malformed, dropped", i))
			continue
		}
		desc := stringField(m, "description")
		if desc == "" {
			*warnings = append(*warnings, fmt.Sprintf("item %d has no description, dropped", i))
			continue
		}
		item := Item{Position: i, Description: desc, Quantity: 1}
		if q, ok := m["quantity"].(float64); ok && q > 0 {
			item.Quantity = q
		}
		item.UnitPrice = moneyField(m, "unit_price", warnings)
		item.Amount = moneyField(m, "amount", warnings)
		items = append(items, item)
	}
	return items
}

// marshalPayload serializes the nested shape; a marshal failure here is a
// programming error surfaced as a plain error.
func marshalPayload(nested map[string]any) (json.RawMessage, error) {
	b, err := json.Marshal(nested)
	if err != nil {
		return nil, fmt.Errorf("marshal normalized payload: %w", err)
	}
	return b, nil
}

// Shared schema fragments.

func decimalProp() map[string]any {
	return map[string]any{
		"type":    []string{"string", "number"},
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}`}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}

func itemsProp() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{"type": "string", "minLength": 1},
				"quantity":    map[string]any{"type": "number", "minimum": 0},
				"unit_price":  decimalProp(),
				"amount":      decimalProp(),
			},
			"required": []string{"description"},
		},
	}
}
