// Package storage holds prompts and collections in process memory.
//
// A Storage is owned by whoever constructs it and is passed to the domain
// systems explicitly. One RWMutex guards both tables so that reference
// checks and cascading deletes observe a consistent view.
package storage

import (
	"log/slog"
	"sync"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/ident"
	"github.com/JaimeStill/promptlab/pkg/repository"
)

// Storage is the authoritative in-process store for prompts and collections.
type Storage struct {
	mu          sync.RWMutex
	prompts     *repository.Table[models.Prompt]
	collections *repository.Table[models.Collection]
	clock       ident.Clock
	logger      *slog.Logger
}

// New creates an empty Storage that stamps updates with clock.
func New(clock ident.Clock, logger *slog.Logger) *Storage {
	return &Storage{
		prompts:     repository.NewTable[models.Prompt](),
		collections: repository.NewTable[models.Collection](),
		clock:       clock,
		logger:      logger.With("system", "storage"),
	}
}

// Now returns the current time from the storage clock.
func (s *Storage) Now() ident.Time {
	return s.clock.Now()
}

// CreatePrompt inserts p under p.ID.
// Returns repository.ErrDuplicate if the id is taken and ErrCollectionNotFound
// if p references a missing collection.
func (s *Storage) CreatePrompt(p models.Prompt) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReference(p.CollectionID); err != nil {
		return models.Prompt{}, err
	}
	if err := s.prompts.Insert(p.ID, p); err != nil {
		return models.Prompt{}, err
	}
	return p, nil
}

// GetPrompt returns the prompt stored under id.
func (s *Storage) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompts.Get(id)
}

// GetAllPrompts returns every prompt. The order is implementation defined.
func (s *Storage) GetAllPrompts() []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompts.All()
}

// GetPromptsByCollection returns the prompts whose collection_id equals collectionID.
func (s *Storage) GetPromptsByCollection(collectionID string) []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompts.Where(func(p models.Prompt) bool {
		return p.InCollection(collectionID)
	})
}

// UpdatePrompt applies mutate to the prompt stored under id and stores the result.
// The id and created_at are preserved and updated_at is set from the clock.
// Returns repository.ErrNotFound if id is absent and ErrCollectionNotFound if the
// mutated prompt references a missing collection; nothing is stored on error.
func (s *Storage) UpdatePrompt(id string, mutate func(*models.Prompt)) (models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.prompts.Get(id)
	if !ok {
		return models.Prompt{}, repository.ErrNotFound
	}

	updated := existing
	mutate(&updated)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.checkReference(updated.CollectionID); err != nil {
		return models.Prompt{}, err
	}

	updated.UpdatedAt = s.clock.Now()
	if err := s.prompts.Replace(id, updated); err != nil {
		return models.Prompt{}, err
	}
	return updated, nil
}

// DeletePrompt removes the prompt stored under id and reports whether it existed.
func (s *Storage) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompts.Delete(id)
}

// CreateCollection inserts c under c.ID. Returns repository.ErrDuplicate if the id is taken.
func (s *Storage) CreateCollection(c models.Collection) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.collections.Insert(c.ID, c); err != nil {
		return models.Collection{}, err
	}
	return c, nil
}

// GetCollection returns the collection stored under id.
func (s *Storage) GetCollection(id string) (models.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections.Get(id)
}

// GetAllCollections returns every collection. The order is implementation defined.
func (s *Storage) GetAllCollections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections.All()
}

// DeleteCollection removes the collection stored under id together with every
// prompt that references it. Returns the number of prompts removed and whether
// the collection existed. Nothing is removed when it did not.
func (s *Storage) DeleteCollection(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collections.Delete(id) {
		return 0, false
	}

	removed := s.prompts.DeleteWhere(func(p models.Prompt) bool {
		return p.InCollection(id)
	})
	if removed > 0 {
		s.logger.Debug("cascade delete", "collection_id", id, "prompts", removed)
	}
	return removed, true
}

// Counts returns the number of stored prompts and collections.
func (s *Storage) Counts() (prompts, collections int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompts.Len(), s.collections.Len()
}

// Clear empties both tables.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts.Clear()
	s.collections.Clear()
}

func (s *Storage) checkReference(collectionID *string) error {
	if collectionID == nil {
		return nil
	}
	if !s.collections.Has(*collectionID) {
		return ErrCollectionNotFound
	}
	return nil
}
