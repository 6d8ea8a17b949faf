package knowledge

import "github.com/triagekit/triagetree/internal/llm"

// CandidateSchema defines the JSON schema for lexicon enrichment
// responses.
var CandidateSchema = &llm.Schema{
	Name:        "lexicon-candidates",
	Description: "Clinical terms classified into the four-tier priority ontology",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"candidates": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"keyword": map[string]any{
							"type":        "string",
							"description": "The clinical term or phrase, lowercase",
						},
						"tier": map[string]any{
							"type":        "string",
							"enum":        []any{"life-threat", "safety", "physical-need", "nursing-process", "none"},
							"description": "Priority tier, or none when the term carries no priority signal",
						},
						"sub_category": map[string]any{
							"type": "string",
							"enum": []any{
								"airway", "breathing", "circulation", "disability",
								"falls", "infection", "violence",
								"glucose", "elimination", "pain", "nutrition",
								"assessment", "diagnosis", "planning", "implementation", "evaluation",
								"none",
							},
							"description": "Sub-category within the tier",
						},
						"weight": map[string]any{
							"type":        "number",
							"minimum":     0.5,
							"maximum":     3.0,
							"description": "Signal strength from 0.5 (weak) to 3.0 (unambiguous)",
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "One sentence explaining the classification",
						},
					},
					"required":             []any{"keyword", "tier", "sub_category", "weight", "rationale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"candidates"},
		"additionalProperties": false,
	},
}
