package prompts

import (
	"strings"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/query"
)

var sortFields = query.NewFields[models.Prompt]().
	Field("created_at", func(a, b models.Prompt) int {
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	}).
	Field("updated_at", func(a, b models.Prompt) int {
		return a.UpdatedAt.Compare(b.UpdatedAt.Time)
	}).
	Field("title", func(a, b models.Prompt) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

var defaultSort = []query.SortField{
	{Field: "created_at", Descending: true},
}

// FilterByCollection returns the prompts whose collection_id equals collectionID.
func FilterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	return query.Filter(prompts, func(p models.Prompt) bool {
		return p.InCollection(collectionID)
	})
}

// Search returns the prompts whose title, or description when present,
// contains q case-insensitively.
func Search(prompts []models.Prompt, q string) []models.Prompt {
	return query.Filter(prompts, func(p models.Prompt) bool {
		if query.ContainsFold(p.Title, q) {
			return true
		}
		return p.Description != nil && query.ContainsFold(*p.Description, q)
	})
}

// SortByCreatedAt returns a copy of prompts ordered by creation time,
// oldest first unless descending is set. Equal timestamps keep their input order.
func SortByCreatedAt(prompts []models.Prompt, descending bool) []models.Prompt {
	return query.SortStable(prompts, func(a, b models.Prompt) int {
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	}, descending)
}

// Sort returns a copy of prompts ordered by fields in priority order.
// Recognised fields are created_at, updated_at, and title.
func Sort(prompts []models.Prompt, fields []query.SortField) []models.Prompt {
	return sortFields.Sort(prompts, fields)
}

// SortFieldNames lists the fields accepted by Sort.
func SortFieldNames() []string {
	return sortFields.Names()
}
