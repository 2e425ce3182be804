package prompts

import (
	"context"

	"github.com/JaimeStill/promptlab/internal/models"
)

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, req ListRequest) (*ListResult, error)
	Find(ctx context.Context, id string) (*models.Prompt, error)
	Variables(ctx context.Context, id string) (*Variables, error)
	Create(ctx context.Context, cmd CreateCommand) (*models.Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*models.Prompt, error)
	Patch(ctx context.Context, id string, cmd PatchCommand) (*models.Prompt, error)
	Delete(ctx context.Context, id string) error
}
