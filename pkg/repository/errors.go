package repository

import "errors"

// Table errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// MapError translates table errors to domain errors.
// It maps ErrNotFound to notFoundErr and ErrDuplicate to duplicateErr.
// Other errors are returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return notFoundErr
	}

	if errors.Is(err, ErrDuplicate) {
		return duplicateErr
	}

	return err
}
