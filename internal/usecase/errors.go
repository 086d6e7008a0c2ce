package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrRenderTimeout         = errors.New("page did not render expected content in time")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
