package interfaces

import "errors"

// ErrNotFound is wrapped by repository backends when a requested entity
// does not exist, so callers can tell a missing entity apart from an
// infrastructure failure.
var ErrNotFound = errors.New("not found")
