package identity

import (
	"errors"
	"fmt"
)

// ErrDuplicateUsername indicates a registration attempt for a username that
// already has a record.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidInput indicates a credential field failed local validation.
// Local validation failures never reach the store.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
