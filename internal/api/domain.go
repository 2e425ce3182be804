package api

import (
	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Collections collections.System
	Prompts     prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Collections: collections.New(
			runtime.Storage,
			runtime.Validator,
			runtime.Logger,
		),
		Prompts: prompts.New(
			runtime.Storage,
			runtime.Validator,
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
