package storage

import "errors"

// ErrCollectionNotFound is returned when a prompt write references a collection
// that does not exist.
var ErrCollectionNotFound = errors.New("collection not found")
