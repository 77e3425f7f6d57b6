package usecase

import "errors"

// ErrDependencyUnavailable marks upstream fetch failures so callers
// can tell a dead site apart from a parse problem.
var ErrDependencyUnavailable = errors.New("dependency unavailable")
