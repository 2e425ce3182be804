// Package collections implements the collection domain for PromptLab.
// Collections are named groupings that prompts may reference; deleting a
// collection deletes the prompts that reference it.
package collections

import "github.com/JaimeStill/promptlab/internal/models"

// CreateCommand carries the data needed to create a new collection.
type CreateCommand struct {
	Name        string  `json:"name" validate:"required,min=1,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ListResult is the response envelope for collection listings.
type ListResult struct {
	Collections []models.Collection `json:"collections"`
	Total       int                 `json:"total"`
}

// PromptsResult is the response envelope for the prompts of one collection.
type PromptsResult struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}
