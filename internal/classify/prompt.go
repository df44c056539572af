package classify

import (
	"strings"

	"github.com/papervault/papervault/constants"
)

// Hints carry non-binding context into the classification prompt.
type Hints struct {
	Filename       string
	UploadCategory string
}

// classificationSchema constrains the Pass-1 response. Kept flat: deeply
// nested schemas are rejected upstream.
func classificationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": append(constants.DocumentTypeStrings(), string(constants.TypeUnknown)),
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"reasoning":  map[string]any{"type": "string"},
		},
		"required": []string{"type", "confidence"},
	}
}

func buildClassificationPrompt(hints Hints) string {
	parts := []string{
		"You are a document classifier. Look at the attached file and decide its type.",
		"Return ONLY JSON matching the provided schema.",
		"Pick exactly one type from: " + strings.Join(constants.DocumentTypeStrings(), ", ") + ".",
		"If none fits, use 'unknown'. Never invent a new label.",
		"Report your confidence between 0 and 1 and a one-sentence reasoning.",
	}
	if f := strings.TrimSpace(hints.Filename); f != "" {
		parts = append(parts, "Original filename (may be misleading): "+f+".")
	}
	if c := strings.TrimSpace(hints.UploadCategory); c != "" {
		parts = append(parts, "The uploader filed this under: "+c+". Treat it as a hint, not ground truth.")
	}
	return strings.Join(parts, " ")
}
