package extract

import (
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		fallback bool
		warned   bool
	}{
		{"iso", "2026-03-14", "2026-03-14", false, false},
		{"german", "14.03.2026", "2026-03-14", false, false},
		{"us", "03/14/2026", "2026-03-14", false, false},
		{"missing", "", "", true, true},
		{"garbage", "mid March", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{}
			if tt.raw != "" {
				fields["d"] = tt.raw
			}
			var warnings []string
			got, fellBack := parseDate(fields, "d", &warnings)
			if fellBack != tt.fallback {
				t.Errorf("fellBack = %v, want %v", fellBack, tt.fallback)
			}
			if (len(warnings) > 0) != tt.warned {
				t.Errorf("warnings = %v", warnings)
			}
			if tt.fallback {
				if time.Since(got) > 48*time.Hour {
					t.Errorf("fallback date not recent: %s", got)
				}
				return
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("parsed %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestMoneyFieldStringAndNumber(t *testing.T) {
	var warnings []string
	fields := map[string]any{
		"str":   "12.50",
		"num":   float64(7),
		"blank": "  ",
		"bad":   "twelve",
	}

	if v := moneyField(fields, "str", &warnings); v == nil || *v != 12.50 {
		t.Errorf("str = %v", v)
	}
	if v := moneyField(fields, "num", &warnings); v == nil || *v != 7 {
		t.Errorf("num = %v", v)
	}
	if v := moneyField(fields, "blank", &warnings); v != nil {
		t.Errorf("blank = %v, want nil", v)
	}
	if v := moneyField(fields, "absent", &warnings); v != nil {
		t.Errorf("absent = %v, want nil", v)
	}
	if len(warnings) != 0 {
		t.Errorf("no warnings expected yet, got %v", warnings)
	}
	if v := moneyField(fields, "bad", &warnings); v != nil {
		t.Errorf("bad = %v, want nil", v)
	}
	if len(warnings) != 1 {
		t.Errorf("unparseable amount should warn, got %v", warnings)
	}
}

func TestCurrencyField(t *testing.T) {
	var warnings []string
	if c := currencyField(map[string]any{"c": "eur"}, "c", &warnings); c != "EUR" {
		t.Errorf("c = %q", c)
	}
	if c := currencyField(map[string]any{}, "c", &warnings); c != "" {
		t.Errorf("absent = %q", c)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if c := currencyField(map[string]any{"c": "euros"}, "c", &warnings); c != "" {
		t.Errorf("invalid = %q", c)
	}
	if len(warnings) != 1 {
		t.Errorf("invalid code should warn, got %v", warnings)
	}
}

func TestItemsFieldDropsMalformedEntries(t *testing.T) {
	var warnings []string
	fields := map[string]any{
		"items": []any{
			map[string]any{"description": "Coffee", "quantity": float64(2), "amount": "7.80"},
			map[string]any{"amount": "1.00"},
			"not an object",
			map[string]any{"description": "Cake"},
		},
	}

	items := itemsField(fields, "items", &warnings)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Position != 0 || items[1].Position != 3 {
		t.Errorf("positions = %d,%d, want source positions 0,3", items[0].Position, items[1].Position)
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %v", items[0].Quantity)
	}
	if items[0].Amount == nil || *items[0].Amount != 7.80 {
		t.Errorf("amount = %v", items[0].Amount)
	}
	if items[1].Quantity != 1 {
		t.Errorf("default quantity = %v", items[1].Quantity)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want 2 dropped entries", warnings)
	}
}
