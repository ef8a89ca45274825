package curriculum

// contentSchema is the JSON Schema a content document must satisfy
// before structural validation runs.
var contentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "integer",
			"description": "Content format version",
		},
		"units": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"number": map[string]any{"type": "integer", "minimum": 1},
					"title":  map[string]any{"type": "string"},
					"sections": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":          map[string]any{"type": "string", "minLength": 1},
								"title":       map[string]any{"type": "string"},
								"description": map[string]any{"type": "string"},
								"nodes": map[string]any{
									"type":     "array",
									"minItems": 1,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"id":        map[string]any{"type": "string", "minLength": 1},
											"title":     map[string]any{"type": "string"},
											"xp_reward": map[string]any{"type": "integer", "minimum": 0},
											"questions": map[string]any{
												"type": "array",
												"items": map[string]any{
													"type": "object",
													"properties": map[string]any{
														"id":          map[string]any{"type": "string", "minLength": 1},
														"sentence":    map[string]any{"type": "string"},
														"instruction": map[string]any{"type": "string"},
														"available_words": map[string]any{
															"type":     "array",
															"minItems": 1,
															"items":    map[string]any{"type": "string"},
														},
														"correct_answer": map[string]any{
															"type":     "array",
															"minItems": 1,
															"items":    map[string]any{"type": "string"},
														},
													},
													"required":             []any{"id", "sentence", "available_words", "correct_answer"},
													"additionalProperties": false,
												},
											},
										},
										"required":             []any{"id", "title", "xp_reward", "questions"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"id", "title", "nodes"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"number", "title", "sections"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "units"},
	"additionalProperties": false,
}
