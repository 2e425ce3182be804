package prompts

import (
	"net/url"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/pagination"
	"github.com/JaimeStill/promptlab/pkg/query"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Filters contains optional filtering criteria for prompt listings.
// Nil fields are ignored. CollectionID uses exact matching.
// Search uses case-insensitive contains matching on title and description.
type Filters struct {
	CollectionID *string `json:"collection_id,omitempty"`
	Search       *string `json:"search,omitempty"`
}

// Apply narrows prompts by every set filter.
func (f Filters) Apply(prompts []models.Prompt) []models.Prompt {
	if f.CollectionID != nil {
		prompts = FilterByCollection(prompts, *f.CollectionID)
	}
	if f.Search != nil {
		prompts = Search(prompts, *f.Search)
	}
	return prompts
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Empty values are treated as absent.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("collection_id"); c != "" {
		f.CollectionID = &c
	}

	if s := values.Get("search"); s != "" {
		f.Search = &s
	}

	return f
}

// ListRequest combines filters, ordering, and the result window for a listing.
type ListRequest struct {
	Filters
	Sort   []query.SortField  `json:"sort,omitempty"`
	Window pagination.Window `json:"window"`
}

// ListRequestFromQuery builds a ListRequest from URL query parameters.
// An absent sort lists newest first. Unknown sort fields and malformed
// limit or offset values are reported together as a *validation.Error.
func ListRequestFromQuery(values url.Values, cfg pagination.Config) (ListRequest, error) {
	req := ListRequest{
		Filters: FiltersFromQuery(values),
		Sort:    query.ParseSortFields(values.Get("sort")),
	}

	verr := &validation.Error{}

	if err := sortFields.Validate(req.Sort); err != nil {
		verr.Add(validation.Issue{
			Loc:  []string{"query", "sort"},
			Msg:  err.Error(),
			Type: "value_error",
		})
	}

	window, err := pagination.WindowFromQuery(values, cfg)
	if err != nil {
		if werr, ok := validation.As(err); ok {
			verr.Add(werr.Issues...)
		} else {
			return ListRequest{}, err
		}
	}
	req.Window = window

	if err := verr.Err(); err != nil {
		return ListRequest{}, err
	}
	return req, nil
}
