package linestore

import "errors"

// ErrNotFound indicates the file to read does not exist.
var ErrNotFound = errors.New("line file not found")
