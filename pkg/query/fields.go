package query

import (
	"fmt"
	"slices"
	"sort"
)

// Fields maps logical field names to comparison functions for values of T.
// It is the in-memory counterpart of a column projection: sort requests name
// fields, Fields resolves them.
type Fields[T any] struct {
	cmps  map[string]func(a, b T) int
	names []string
}

// NewFields creates an empty Fields registry.
func NewFields[T any]() *Fields[T] {
	return &Fields[T]{cmps: make(map[string]func(a, b T) int)}
}

// Field registers cmp under name.
func (f *Fields[T]) Field(name string, cmp func(a, b T) int) *Fields[T] {
	f.cmps[name] = cmp
	f.names = append(f.names, name)
	sort.Strings(f.names)
	return f
}

// Names returns the registered field names in sorted order.
func (f *Fields[T]) Names() []string {
	return slices.Clone(f.names)
}

// Validate returns an error naming the first sort field that is not registered.
func (f *Fields[T]) Validate(sortFields []SortField) error {
	for _, sf := range sortFields {
		if _, ok := f.cmps[sf.Field]; !ok {
			return fmt.Errorf("unknown sort field %q", sf.Field)
		}
	}
	return nil
}

// Sort returns a stably sorted copy of items ordered by sortFields in priority order.
// Unregistered fields are ignored.
func (f *Fields[T]) Sort(items []T, sortFields []SortField) []T {
	type key struct {
		cmp        func(a, b T) int
		descending bool
	}

	keys := make([]key, 0, len(sortFields))
	for _, sf := range sortFields {
		if cmp, ok := f.cmps[sf.Field]; ok {
			keys = append(keys, key{cmp: cmp, descending: sf.Descending})
		}
	}

	return SortStable(items, func(a, b T) int {
		for _, k := range keys {
			c := k.cmp(a, b)
			if k.descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	}, false)
}
