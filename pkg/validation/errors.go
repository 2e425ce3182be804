package validation

import (
	"errors"
	"strings"
)

// ErrBodyTooLarge is returned when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Issue describes one invalid input: where it is, what is wrong, and a machine-readable kind.
type Issue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Error collects every Issue found while decoding and validating one request.
type Error struct {
	Issues []Issue
}

// Error joins the issues into a single line.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, strings.Join(issue.Loc, ".")+": "+issue.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends issues to the error.
func (e *Error) Add(issues ...Issue) {
	e.Issues = append(e.Issues, issues...)
}

// Err returns e when it holds at least one issue and nil otherwise.
func (e *Error) Err() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

// NewError creates an Error holding a single issue.
func NewError(loc []string, msg, typ string) *Error {
	return &Error{Issues: []Issue{{Loc: loc, Msg: msg, Type: typ}}}
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
