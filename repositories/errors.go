package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Services
// translate it into their own taxonomy so handlers can tell a missing
// definition from a missing submission.
var ErrNotFound = errors.New("not found")
