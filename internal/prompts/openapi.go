package prompts

import "github.com/JaimeStill/promptlab/pkg/openapi"

// Spec documents the prompt endpoints.
var Spec = openapi.PathOperations{
	Paths: map[string]*openapi.PathItem{
		"/prompts": {
			Get: &openapi.Operation{
				Summary: "List prompts",
				Tags:    []string{"Prompts"},
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("collection_id", "string", "Only prompts in this collection", false),
					openapi.QueryParam("search", "string", "Case-insensitive match on title or description", false),
					openapi.QueryParam("sort", "string", "Comma-separated fields, '-' prefix for descending (created_at, updated_at, title)", false),
					openapi.QueryParam("limit", "integer", "Maximum number of prompts to return", false),
					openapi.QueryParam("offset", "integer", "Number of matching prompts to skip", false),
				},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Matching prompts", "PromptList"),
					422: openapi.ResponseRef("ValidationError"),
				},
			},
			Post: &openapi.Operation{
				Summary:     "Create prompt",
				Tags:        []string{"Prompts"},
				RequestBody: openapi.RequestBodyJSON("PromptCreate", true),
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Created prompt", "Prompt"),
					400: openapi.ResponseRef("BadRequest"),
					422: openapi.ResponseRef("ValidationError"),
				},
			},
		},
		"/prompts/{id}": {
			Get: &openapi.Operation{
				Summary:    "Get prompt",
				Tags:       []string{"Prompts"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Prompt", "Prompt"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
			Put: &openapi.Operation{
				Summary:     "Replace prompt",
				Tags:        []string{"Prompts"},
				Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
				RequestBody: openapi.RequestBodyJSON("PromptCreate", true),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Updated prompt", "Prompt"),
					400: openapi.ResponseRef("BadRequest"),
					404: openapi.ResponseRef("NotFound"),
					422: openapi.ResponseRef("ValidationError"),
				},
			},
			Patch: &openapi.Operation{
				Summary:     "Partially update prompt",
				Description: "Only the fields present in the body change. Null clears description and collection_id.",
				Tags:        []string{"Prompts"},
				Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
				RequestBody: openapi.RequestBodyJSON("PromptPatch", true),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Updated prompt", "Prompt"),
					400: openapi.ResponseRef("BadRequest"),
					404: openapi.ResponseRef("NotFound"),
					422: openapi.ResponseRef("ValidationError"),
				},
			},
			Delete: &openapi.Operation{
				Summary:    "Delete prompt",
				Tags:       []string{"Prompts"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
				Responses: map[int]*openapi.Response{
					204: {Description: "Prompt deleted"},
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/prompts/{id}/variables": {
			Get: &openapi.Operation{
				Summary:    "List template variables",
				Tags:       []string{"Prompts"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Template variables", "PromptVariables"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
	},
	Schemas: map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"title":         {Type: "string"},
				"content":       {Type: "string"},
				"description":   {Type: "string", Nullable: true},
				"collection_id": {Type: "string", Nullable: true},
				"created_at":    {Type: "string", Format: "date-time"},
				"updated_at":    {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "title", "content", "description", "collection_id", "created_at", "updated_at"},
		},
		"PromptCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         openapi.StringSchema(1, 200),
				"content":       openapi.StringSchema(1, 0),
				"description":   openapi.StringSchema(0, 500).OrNull(),
				"collection_id": {Type: "string", Nullable: true},
			},
			Required: []string{"title", "content"},
		},
		"PromptPatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         openapi.StringSchema(0, 200).OrNull(),
				"content":       {Type: "string", Nullable: true},
				"description":   openapi.StringSchema(0, 500).OrNull(),
				"collection_id": {Type: "string", Nullable: true},
			},
		},
		"PromptList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"prompts": {Type: "array", Items: openapi.SchemaRef("Prompt")},
				"total":   {Type: "integer"},
			},
			Required: []string{"prompts", "total"},
		},
		"PromptVariables": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string"},
				"variables":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"valid_content": {Type: "boolean"},
			},
			Required: []string{"id", "variables", "valid_content"},
		},
	},
}
