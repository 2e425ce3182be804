// Package prompts implements the prompt domain for PromptLab.
// It provides commands, query utilities, data access, and HTTP handlers for
// managing prompt templates.
package prompts

import (
	"encoding/json"
	"strings"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// CreateCommand carries the data needed to create a new prompt.
type CreateCommand struct {
	Title        string  `json:"title" validate:"required,min=1,notblank,max=200"`
	Content      string  `json:"content" validate:"required,min=1,notblank"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// UpdateCommand carries the full replacement of a prompt's mutable fields.
// Omitted optional fields are cleared.
type UpdateCommand struct {
	Title        string  `json:"title" validate:"required,min=1,notblank,max=200"`
	Content      string  `json:"content" validate:"required,min=1,notblank"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// Field is a PATCH body member that distinguishes an absent member from an
// explicit null.
type Field struct {
	Present bool
	Value   *string
}

// UnmarshalJSON marks the field present and decodes a string or null.
func (f *Field) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.Value = &s
	return nil
}

// PatchCommand carries a partial update. Only present fields are applied.
type PatchCommand struct {
	Title        Field `json:"title"`
	Content      Field `json:"content"`
	Description  Field `json:"description"`
	CollectionID Field `json:"collection_id"`
}

// Normalize turns blank strings into nulls. Title and content cannot be
// cleared, so a null for either is dropped as if it were absent.
func (c *PatchCommand) Normalize() {
	for _, f := range []*Field{&c.Title, &c.Content, &c.Description, &c.CollectionID} {
		if f.Value != nil && strings.TrimSpace(*f.Value) == "" {
			f.Value = nil
		}
	}
	for _, f := range []*Field{&c.Title, &c.Content} {
		if f.Present && f.Value == nil {
			f.Present = false
		}
	}
}

// Empty reports whether the command would change nothing.
func (c *PatchCommand) Empty() bool {
	return !c.Title.Present &&
		!c.Content.Present &&
		!c.Description.Present &&
		!c.CollectionID.Present
}

// Validate checks the length rules of the present fields.
func (c *PatchCommand) Validate(v *validation.Validator) error {
	verr := &validation.Error{}
	if c.Title.Value != nil {
		verr.Add(v.Var([]string{"body", "title"}, *c.Title.Value, "max=200")...)
	}
	if c.Description.Value != nil {
		verr.Add(v.Var([]string{"body", "description"}, *c.Description.Value, "max=500")...)
	}
	return verr.Err()
}

// Apply writes the present fields onto p.
func (c *PatchCommand) Apply(p *models.Prompt) {
	if c.Title.Present {
		p.Title = *c.Title.Value
	}
	if c.Content.Present {
		p.Content = *c.Content.Value
	}
	if c.Description.Present {
		p.Description = c.Description.Value
	}
	if c.CollectionID.Present {
		p.CollectionID = c.CollectionID.Value
	}
}

// ListResult is the response envelope for prompt listings.
// Total counts every match before the limit/offset window is applied.
type ListResult struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}

// Variables describes the placeholders found in a prompt's content.
type Variables struct {
	ID           string   `json:"id"`
	Variables    []string `json:"variables"`
	ValidContent bool     `json:"valid_content"`
}

func reference(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
