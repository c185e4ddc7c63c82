package core

import "errors"

var (
	ErrInvalidRoute      = errors.New("invalid route")
	ErrDuplicateRoute    = errors.New("duplicate route")
	ErrOutputDirRequired = errors.New("output directory is required")
)

type ErrorData struct {
	Status  int
	Message string
	IsDev   bool
}
