package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError is the only structured error the stores produce. ID
// keeps the external representation of the identity so the message can
// echo whatever the caller sent, including non-numeric input.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

func notFound(kind string, id any) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: fmt.Sprint(id)}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
