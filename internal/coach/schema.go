package coach

import "github.com/abhisek/touchline/internal/llm"

// AdviceSchema is the JSON shape of a study plan.
var AdviceSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short football-knowledge study plan following an assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One encouraging sentence summing up the result (max 15 words)",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete study tips aimed at the weakest categories",
			},
			"drills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 short activities, e.g. watching a match with a specific focus",
			},
		},
		"required":             []any{"headline", "tips", "drills"},
		"additionalProperties": false,
	},
}
