package collections

import "github.com/JaimeStill/promptlab/pkg/openapi"

// Spec documents the collection endpoints.
var Spec = openapi.PathOperations{
	Paths: map[string]*openapi.PathItem{
		"/collections": {
			Get: &openapi.Operation{
				Summary: "List collections",
				Tags:    []string{"Collections"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("All collections", "CollectionList"),
				},
			},
			Post: &openapi.Operation{
				Summary:     "Create collection",
				Tags:        []string{"Collections"},
				RequestBody: openapi.RequestBodyJSON("CollectionCreate", true),
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Created collection", "Collection"),
					422: openapi.ResponseRef("ValidationError"),
				},
			},
		},
		"/collections/{id}": {
			Get: &openapi.Operation{
				Summary:    "Get collection",
				Tags:       []string{"Collections"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Collection ID")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Collection", "Collection"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
			Delete: &openapi.Operation{
				Summary:     "Delete collection",
				Description: "Prompts that reference the collection are deleted with it.",
				Tags:        []string{"Collections"},
				Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Collection ID")},
				Responses: map[int]*openapi.Response{
					204: {Description: "Collection deleted"},
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/collections/{id}/prompts": {
			Get: &openapi.Operation{
				Summary:    "List prompts in collection",
				Tags:       []string{"Collections"},
				Parameters: []*openapi.Parameter{openapi.PathParam("id", "Collection ID")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Prompts in the collection, newest first", "PromptList"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
	},
	Schemas: map[string]*openapi.Schema{
		"Collection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string", Nullable: true},
				"created_at":  {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "name", "description", "created_at"},
		},
		"CollectionCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        openapi.StringSchema(1, 100),
				"description": openapi.StringSchema(0, 500).OrNull(),
			},
			Required: []string{"name"},
		},
		"CollectionList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"collections": {Type: "array", Items: openapi.SchemaRef("Collection")},
				"total":       {Type: "integer"},
			},
			Required: []string{"collections", "total"},
		},
	},
}
