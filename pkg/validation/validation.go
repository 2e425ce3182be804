// Package validation decodes JSON request bodies and validates them against
// struct tags, reporting every offending field rather than stopping at the first.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JaimeStill/promptlab/pkg/formatting"
)

// Validator wraps a validator.Validate configured for JSON field naming.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names and
// understands the "notblank" rule.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// DecodeJSON reads a JSON object from r into dst (a pointer to a struct) and
// validates it. Fields are decoded one at a time so that every type mismatch
// is reported alongside every rule violation.
func (v *Validator) DecodeJSON(r io.Reader, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: limit is %s", ErrBodyTooLarge, formatting.FormatBytes(maxErr.Limit, 1))
		}
		return NewError([]string{"body"}, "Unable to read request body", "body_read")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return NewError([]string{"body"}, "Input should be a valid dictionary or object", "model_attributes_type")
		}
		return NewError([]string{"body"}, "JSON decode error", "json_invalid")
	}
	if raw == nil {
		return NewError([]string{"body"}, "Input should be a valid dictionary or object", "model_attributes_type")
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	verr := &Error{}
	failed := make(map[string]bool)
	order := make(map[string]int)
	types := make(map[string]reflect.Type)

	for i := range rt.NumField() {
		field := rt.Field(i)
		name := jsonName(field)
		if name == "" || !field.IsExported() {
			continue
		}
		order[name] = i
		types[name] = field.Type

		msg, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, rv.Field(i).Addr().Interface()); err != nil {
			target := field.Type
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Type != nil {
				target = typeErr.Type
			}
			text, typ := typeIssue(target)
			verr.Add(Issue{Loc: []string{"body", name}, Msg: text, Type: typ})
			failed[name] = true
		}
	}

	if err := v.validate.Struct(dst); err != nil {
		for _, issue := range v.issues(err, []string{"body"}) {
			name := issue.Loc[len(issue.Loc)-1]
			if failed[name] {
				continue
			}
			if msg, ok := raw[name]; ok && issue.Type == "missing" {
				issue.Msg, issue.Type = presentIssue(msg, types[name], issue)
			}
			verr.Add(issue)
		}
	}

	slices.SortStableFunc(verr.Issues, func(a, b Issue) int {
		return order[a.Loc[len(a.Loc)-1]] - order[b.Loc[len(b.Loc)-1]]
	})

	return verr.Err()
}

// Struct validates an already populated struct.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return &Error{Issues: v.issues(err, []string{"body"})}
	}
	return nil
}

// Var validates a single value against tag and reports issues at loc.
func (v *Validator) Var(loc []string, value any, tag string) []Issue {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Loc: loc, Msg: err.Error(), Type: "value_error"}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		msg, typ := ruleIssue(fe)
		issues = append(issues, Issue{Loc: loc, Msg: msg, Type: typ})
	}
	return issues
}

func (v *Validator) issues(err error, prefix []string) []Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Loc: prefix, Msg: err.Error(), Type: "value_error"}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		msg, typ := ruleIssue(fe)
		loc := append(slices.Clone(prefix), fe.Field())
		issues = append(issues, Issue{Loc: loc, Msg: msg, Type: typ})
	}
	return issues
}

func ruleIssue(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "notblank":
		return "String should not be blank", "string_blank"
	case "min":
		return fmt.Sprintf("String should have at least %s %s", fe.Param(), characters(fe.Param())), "string_too_short"
	case "max":
		return fmt.Sprintf("String should have at most %s %s", fe.Param(), characters(fe.Param())), "string_too_long"
	case "gte":
		return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), "greater_than_equal"
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag()), fe.Tag()
	}
}

// presentIssue rewrites a failed "required" rule for a key that was sent:
// null is a type error and an empty string is too short.
func presentIssue(msg json.RawMessage, t reflect.Type, issue Issue) (string, string) {
	if string(bytes.TrimSpace(msg)) == "null" {
		return typeIssue(t)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.String {
		return "String should have at least 1 character", "string_too_short"
	}
	return issue.Msg, issue.Type
}

func typeIssue(t reflect.Type) (string, string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Input should be a valid string", "string_type"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "Input should be a valid integer", "int_type"
	case reflect.Bool:
		return "Input should be a valid boolean", "bool_type"
	default:
		return "Input should be a valid value", "type_error"
	}
}

func characters(n string) string {
	if n == "1" {
		return "character"
	}
	return "characters"
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
