package database

import "errors"

// ErrNotFound is returned when an operation targets a document id,
// slug or key that doesn't exist in the collection.
var ErrNotFound = errors.New("document not found")
