package domain

import "errors"

// ErrNotFound is returned by repositories when the requested row does not
// exist. Use cases translate it into the business error for their entity.
var ErrNotFound = errors.New("record not found")
