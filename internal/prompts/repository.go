package prompts

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/ident"
	"github.com/JaimeStill/promptlab/pkg/pagination"
	"github.com/JaimeStill/promptlab/pkg/repository"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

type repo struct {
	store      *storage.Storage
	validator  *validation.Validator
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a prompt repository implementing the System interface.
func New(
	store *storage.Storage,
	validator *validation.Validator,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		store:      store,
		validator:  validator,
		logger:     logger.With("system", "prompts"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.validator, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	if err := sortFields.Validate(req.Sort); err != nil {
		return nil, validation.NewError([]string{"query", "sort"}, err.Error(), "value_error")
	}
	req.Window.Normalize(r.pagination)

	matches := req.Filters.Apply(r.store.GetAllPrompts())

	order := req.Sort
	if len(order) == 0 {
		order = defaultSort
	}
	matches = Sort(matches, order)

	return &ListResult{
		Prompts: pagination.Apply(matches, req.Window),
		Total:   len(matches),
	}, nil
}

func (r *repo) Find(ctx context.Context, id string) (*models.Prompt, error) {
	p, ok := r.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *repo) Variables(ctx context.Context, id string) (*Variables, error) {
	p, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Variables{
		ID:           p.ID,
		Variables:    ExtractVariables(p.Content),
		ValidContent: IsValidContent(p.Content),
	}, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*models.Prompt, error) {
	if err := r.validator.Struct(cmd); err != nil {
		return nil, err
	}

	now := r.store.Now()
	p, err := r.store.CreatePrompt(models.Prompt{
		ID:           ident.NewID(),
		Title:        cmd.Title,
		Content:      cmd.Content,
		Description:  cmd.Description,
		CollectionID: reference(cmd.CollectionID),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("prompt created", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id string, cmd UpdateCommand) (*models.Prompt, error) {
	if err := r.validator.Struct(cmd); err != nil {
		return nil, err
	}

	p, err := r.store.UpdatePrompt(id, func(p *models.Prompt) {
		p.Title = cmd.Title
		p.Content = cmd.Content
		p.Description = cmd.Description
		p.CollectionID = reference(cmd.CollectionID)
	})
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("prompt updated", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (r *repo) Patch(ctx context.Context, id string, cmd PatchCommand) (*models.Prompt, error) {
	cmd.Normalize()
	if err := cmd.Validate(r.validator); err != nil {
		return nil, err
	}

	if cmd.Empty() {
		return r.Find(ctx, id)
	}

	p, err := r.store.UpdatePrompt(id, cmd.Apply)
	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("prompt patched", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if !r.store.DeletePrompt(id) {
		return ErrNotFound
	}

	r.logger.Info("prompt deleted", "id", id)
	return nil
}

func mapError(err error) error {
	if errors.Is(err, storage.ErrCollectionNotFound) {
		return ErrInvalidCollection
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
