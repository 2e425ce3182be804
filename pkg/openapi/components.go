package openapi

import "maps"

// NewComponents creates Components with shared error schemas and responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"HTTPError": {
				Type: "object",
				Properties: map[string]*Schema{
					"detail": {Type: "string", Description: "Error message"},
				},
				Required: []string{"detail"},
			},
			"ValidationIssue": {
				Type: "object",
				Properties: map[string]*Schema{
					"loc":  {Type: "array", Items: &Schema{Type: "string"}, Description: "Location of the offending input"},
					"msg":  {Type: "string", Description: "Human-readable message"},
					"type": {Type: "string", Description: "Machine-readable error kind"},
				},
				Required: []string{"loc", "msg", "type"},
			},
			"ValidationError": {
				Type: "object",
				Properties: map[string]*Schema{
					"detail": {Type: "array", Items: SchemaRef("ValidationIssue")},
				},
				Required: []string{"detail"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid reference in request",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("HTTPError")},
				},
			},
			"NotFound": {
				Description: "Resource not found",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("HTTPError")},
				},
			},
			"Conflict": {
				Description: "Resource conflict",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("HTTPError")},
				},
			},
			"ValidationError": {
				Description: "Request failed schema validation",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ValidationError")},
				},
			},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
