// Package models defines the stored resource shapes shared by the storage
// layer and the domain systems.
package models

import "github.com/JaimeStill/promptlab/pkg/ident"

// Prompt is a stored text template. Content may contain {{variable}} placeholders.
type Prompt struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Description  *string    `json:"description"`
	CollectionID *string    `json:"collection_id"`
	CreatedAt    ident.Time `json:"created_at"`
	UpdatedAt    ident.Time `json:"updated_at"`
}

// InCollection reports whether the prompt references collectionID exactly.
func (p Prompt) InCollection(collectionID string) bool {
	return p.CollectionID != nil && *p.CollectionID == collectionID
}

// Collection is a named grouping that prompts may reference.
type Collection struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   ident.Time `json:"created_at"`
}
