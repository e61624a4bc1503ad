package names

import "errors"

// ErrInputNotFound indicates the names file to sort does not exist.
// Errors returned for a missing input also match linestore.ErrNotFound.
var ErrInputNotFound = errors.New("input names file not found")
