package storage

import "errors"

// ErrNotFound is returned by mutations whose target row does not exist (or
// no longer matches the mutation's guard clause). Reads return nil, nil for
// missing rows instead.
var ErrNotFound = errors.New("row not found")
