package namelistrepo

import "errors"

var (
	// ErrNotFound indicates the requested name list does not exist.
	ErrNotFound = errors.New("name list not found")

	// ErrAlreadyExists indicates a name list already exists with the provided ID.
	ErrAlreadyExists = errors.New("name list already exists")
)
