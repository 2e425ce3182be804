// Package repository provides an ordered in-memory table keyed by identifier.
//
// Table does no locking of its own. Owners that share a Table across
// goroutines guard it with their own mutex so that operations spanning
// several tables stay atomic.
package repository

// Table stores values of T by identifier and remembers insertion order.
type Table[T any] struct {
	rows  map[string]T
	order []string
}

// NewTable creates an empty Table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		rows:  make(map[string]T),
		order: make([]string, 0),
	}
}

// Insert adds value under id. Returns ErrDuplicate if id is already present.
func (t *Table[T]) Insert(id string, value T) error {
	if _, ok := t.rows[id]; ok {
		return ErrDuplicate
	}
	t.rows[id] = value
	t.order = append(t.order, id)
	return nil
}

// Get returns the value stored under id.
func (t *Table[T]) Get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// Has reports whether id is present.
func (t *Table[T]) Has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

// Replace overwrites the value under an existing id.
// Returns ErrNotFound if id is absent.
func (t *Table[T]) Replace(id string, value T) error {
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	t.rows[id] = value
	return nil
}

// Delete removes id and reports whether it was present.
func (t *Table[T]) Delete(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteWhere removes every value matching pred and returns how many were removed.
func (t *Table[T]) DeleteWhere(pred func(T) bool) int {
	kept := t.order[:0]
	removed := 0
	for _, id := range t.order {
		if pred(t.rows[id]) {
			delete(t.rows, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return removed
}

// All returns a copy of every value in insertion order.
func (t *Table[T]) All() []T {
	return t.Where(nil)
}

// Where returns a copy of the values matching pred in insertion order.
// A nil pred matches everything.
func (t *Table[T]) Where(pred func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of stored values.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Clear removes every value.
func (t *Table[T]) Clear() {
	clear(t.rows)
	t.order = t.order[:0]
}
