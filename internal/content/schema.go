package content

import "github.com/abhisek/learnpath/internal/llm"

// PlanSchema is the structured output contract for a learning roadmap.
var PlanSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "A week-by-week learning roadmap with topics, resources and a project per week",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weeks": map[string]any{
				"type":        "array",
				"description": "An array of weekly learning plans.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week": map[string]any{
							"type":        "integer",
							"description": "The week number.",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "The title for the week's curriculum.",
						},
						"topics": map[string]any{
							"type":        "array",
							"description": "An array of topics to study during the week.",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{
										"type":        "string",
										"description": "The specific topic title.",
									},
									"completed": map[string]any{
										"type":        "boolean",
										"description": "Status of completion, default to false.",
									},
									"resources": map[string]any{
										"type":        "array",
										"description": "A list of useful links or resources for the topic.",
										"items":       map[string]any{"type": "string"},
									},
								},
								"required":             []any{"title", "completed", "resources"},
								"additionalProperties": false,
							},
						},
						"project": map[string]any{
							"type":        "string",
							"description": "A small project to complete at the end of the week.",
						},
					},
					"required":             []any{"week", "title", "topics", "project"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"weeks"},
		"additionalProperties": false,
	},
}

// JobsSchema is the structured output contract for job matching.
var JobsSchema = &llm.Schema{
	Name:        "job-listings",
	Description: "Job openings relevant to a learner's skill and progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"jobs": map[string]any{
				"type":        "array",
				"description": "A list of relevant job opportunities.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The job title.",
						},
						"company": map[string]any{
							"type":        "string",
							"description": "The company name.",
						},
						"link": map[string]any{
							"type":        "string",
							"description": "A link to the job application or description.",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "A brief description of the job role.",
						},
					},
					"required":             []any{"title", "company", "link", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"jobs"},
		"additionalProperties": false,
	},
}
