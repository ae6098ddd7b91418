package scenegraph

import "errors"

var (
	// ErrInvalidChild is returned when a container refuses a child
	ErrInvalidChild = errors.New("invalid child")
	// ErrUnsupported is returned when a shape is asked to hold components
	ErrUnsupported = errors.New("shapes cannot contain components")
)

// OperationError describes a failed Add or Remove call
type OperationError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *OperationError) Error() string {
	return e.Kind.String() + ": " + e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
