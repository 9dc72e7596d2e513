package results

import (
	"errors"
	"fmt"
)

// ErrNoRecommendations indicates a well-formed response whose
// recommendation list was empty. The call itself may have succeeded; an
// empty list still never reaches the cache.
var ErrNoRecommendations = errors.New("recommendation service returned no recommendations")

// ErrNotFound indicates neither the session cache nor the service had a
// usable result for the session.
var ErrNotFound = errors.New("no results available for this session")

// ErrValidation indicates the answer set does not cover every required
// question. Raised locally, before any network traffic.
type ErrValidation struct {
	Missing []int
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("answers incomplete: %d questions unanswered", len(e.Missing))
}
