package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is wrapped by initialization errors caused by an out-of-range index
	ErrInvalidIndex = errors.New("index out of range")

	// ErrMissingChild is wrapped by initialization errors caused by a nil child shape
	ErrMissingChild = errors.New("missing child shape")
)

// InitializationError reports scene data that cannot be rendered
type InitializationError struct {
	Shape  string // Kind of shape that failed
	Reason string // Which reference was invalid
	Index  int
	Limit  int // Size of the referenced table
	Err    error
}

func (e *InitializationError) Error() string {
	if errors.Is(e.Err, ErrInvalidIndex) {
		return fmt.Sprintf("%s: %s %d not in [0, %d)", e.Shape, e.Reason, e.Index, e.Limit)
	}
	return fmt.Sprintf("%s: %s: %v", e.Shape, e.Reason, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// checkIndex returns an InitializationError unless 0 <= index < limit
func checkIndex(shape, reason string, index, limit int) error {
	if index < 0 || index >= limit {
		return &InitializationError{
			Shape:  shape,
			Reason: reason,
			Index:  index,
			Limit:  limit,
			Err:    ErrInvalidIndex,
		}
	}
	return nil
}

func missingChild(shape string, index int) error {
	return &InitializationError{
		Shape:  shape,
		Reason: fmt.Sprintf("child %d", index),
		Index:  index,
		Err:    ErrMissingChild,
	}
}
