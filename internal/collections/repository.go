package collections

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/ident"
	"github.com/JaimeStill/promptlab/pkg/query"
	"github.com/JaimeStill/promptlab/pkg/repository"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

type repo struct {
	store     *storage.Storage
	validator *validation.Validator
	logger    *slog.Logger
}

// New creates a collection repository implementing the System interface.
func New(
	store *storage.Storage,
	validator *validation.Validator,
	logger *slog.Logger,
) System {
	return &repo{
		store:     store,
		validator: validator,
		logger:    logger.With("system", "collections"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.validator, r.logger)
}

func (r *repo) List(ctx context.Context) (*ListResult, error) {
	all := query.SortStable(r.store.GetAllCollections(), func(a, b models.Collection) int {
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	}, false)

	return &ListResult{
		Collections: all,
		Total:       len(all),
	}, nil
}

func (r *repo) Find(ctx context.Context, id string) (*models.Collection, error) {
	c, ok := r.store.GetCollection(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *repo) Prompts(ctx context.Context, id string) (*PromptsResult, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	ps := prompts.SortByCreatedAt(r.store.GetPromptsByCollection(id), true)
	return &PromptsResult{
		Prompts: ps,
		Total:   len(ps),
	}, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*models.Collection, error) {
	if err := r.validator.Struct(cmd); err != nil {
		return nil, err
	}

	c, err := r.store.CreateCollection(models.Collection{
		ID:          ident.NewID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   r.store.Now(),
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("collection created", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	removed, ok := r.store.DeleteCollection(id)
	if !ok {
		return ErrNotFound
	}

	r.logger.Info("collection deleted", "id", id, "prompts_removed", removed)
	return nil
}
