package campaign

import "outreach-automation/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"query", "num_results"},
		Properties: map[string]validation.Property{
			"query": {
				Type:        "string",
				Description: "Search query used to discover candidate brands",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(200),
			},
			"num_results": {
				Type:        "integer",
				Description: "Number of search results to request",
				Minimum:     validation.FloatPtr(1),
				Maximum:     validation.FloatPtr(20),
			},
		},
		AdditionalProperties: false,
	}
}
