package remote

import (
	"encoding/json"
	"fmt"
)

// genericFailure is reported when the service fails without giving a reason.
const genericFailure = "recommendation service request failed"

// ErrUnavailable indicates the service is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recommendation service unavailable: %v", e.Err)
	}
	return "recommendation service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRemote indicates the service answered with a non-success status or an
// explicit failure body. Message carries the remote-reported reason
// verbatim, or a generic fallback when none was given.
type ErrRemote struct {
	Status  int
	Message string
}

func (e *ErrRemote) Error() string {
	msg := e.Message
	if msg == "" {
		msg = genericFailure
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	return msg
}

// ErrInvalidPayload indicates the service returned a body that does not
// conform to the documented payload schema.
type ErrInvalidPayload struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid recommendation payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
