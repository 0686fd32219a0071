package repository

import "errors"

// ErrNotFound reports that the addressed row does not exist.
var ErrNotFound = errors.New("repository: not found")
