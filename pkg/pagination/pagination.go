// Package pagination provides limit/offset windows over list results.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Window selects a contiguous range of a list.
// A zero Limit means no upper bound.
type Window struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Normalize clamps the window to the configured maximum.
// An unbounded window stays unbounded.
func (w *Window) Normalize(cfg Config) {
	if w.Offset < 0 {
		w.Offset = 0
	}
	if w.Limit > cfg.MaxLimit {
		w.Limit = cfg.MaxLimit
	}
}

// WindowFromQuery parses the limit and offset query parameters.
// Absent parameters leave the window unbounded. Non-integer or out-of-range
// values are reported together as a *validation.Error.
func WindowFromQuery(values url.Values, cfg Config) (Window, error) {
	var w Window
	verr := &validation.Error{}

	if s := values.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			verr.Add(validation.Issue{Loc: []string{"query", "limit"}, Msg: "Input should be a valid integer", Type: "int_parsing"})
		case n < 1:
			verr.Add(validation.Issue{Loc: []string{"query", "limit"}, Msg: "Input should be greater than or equal to 1", Type: "greater_than_equal"})
		default:
			w.Limit = n
		}
	}

	if s := values.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			verr.Add(validation.Issue{Loc: []string{"query", "offset"}, Msg: "Input should be a valid integer", Type: "int_parsing"})
		case n < 0:
			verr.Add(validation.Issue{Loc: []string{"query", "offset"}, Msg: "Input should be greater than or equal to 0", Type: "greater_than_equal"})
		default:
			w.Offset = n
		}
	}

	if err := verr.Err(); err != nil {
		return Window{}, err
	}

	w.Normalize(cfg)
	return w, nil
}

// Apply returns the portion of items selected by w.
func Apply[T any](items []T, w Window) []T {
	if w.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if w.Limit > 0 && w.Offset+w.Limit < end {
		end = w.Offset + w.Limit
	}
	return items[w.Offset:end]
}
