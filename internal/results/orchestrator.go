package results

import (
	"context"
	"slices"

	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/store"
)

// DefaultTopN is how many recommendations a quiz completion asks for.
const DefaultTopN = 5

// State is the orchestrator's position in one quiz-completion cycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateComputing
	StateCached
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateComputing:
		return "computing"
	case StateCached:
		return "cached"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Orchestrator drives submit → remote compute → cache for one quiz
// completion, and serves the latest snapshot cache-first with a single
// remote fallback.
//
// Concurrent Run invocations are not de-duplicated or cancelled: each runs
// its own remote computation and whichever finishes last owns the cache.
type Orchestrator struct {
	svc   remote.Service
	cache store.KV // session scope
	TopN  int

	state   State
	lastErr error
}

// NewOrchestrator creates an Orchestrator over the session-scoped cache.
func NewOrchestrator(svc remote.Service, sessionKV store.KV) *Orchestrator {
	return &Orchestrator{svc: svc, cache: sessionKV, TopN: DefaultTopN}
}

// State returns the current state of the most recent cycle.
func (o *Orchestrator) State() State {
	return o.state
}

// Failure returns the error that parked the machine in StateFailed, nil
// otherwise.
func (o *Orchestrator) Failure() error {
	if o.state != StateFailed {
		return nil
	}
	return o.lastErr
}

// Run executes one full cycle: validate locally, submit, request
// recommendations, cache the snapshot. Within a cycle submit strictly
// precedes recommend, and recommend strictly precedes the cache write.
func (o *Orchestrator) Run(ctx context.Context, sessionID string, answers map[int]int, required []int) (*Snapshot, error) {
	// Local completeness check; a validation failure never reaches the
	// network and the machine has not started.
	var missing []int
	for _, id := range required {
		if _, ok := answers[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &ErrValidation{Missing: missing}
	}

	o.state = StateSubmitting
	if err := o.svc.Submit(ctx, sessionID, answers); err != nil {
		return nil, o.fail(err)
	}

	o.state = StateComputing
	payload, err := o.svc.Recommend(ctx, sessionID, o.TopN)
	if err != nil {
		return nil, o.fail(err)
	}
	// A 2xx with an empty list is still a failure; an empty payload must
	// never be cached as a result.
	if payload == nil || len(payload.TopRecommendations) == 0 {
		return nil, o.fail(ErrNoRecommendations)
	}

	snap := FromPayload(payload, sessionID)
	if err := store.SetJSON(ctx, o.cache, resultsKey, snap); err != nil {
		return nil, o.fail(err)
	}
	o.state = StateCached
	o.lastErr = nil
	return snap, nil
}

// Load serves the results view: the session cache wins when it holds a
// snapshot with a non-empty recommendation list (no network call then);
// otherwise one remote fetch-by-session is attempted. ErrNotFound when
// neither source has usable data.
func (o *Orchestrator) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	var cached Snapshot
	ok, err := store.GetJSON(ctx, o.cache, resultsKey, &cached)
	if err != nil {
		return nil, err
	}
	if ok && len(cached.Recommendations) > 0 {
		return &cached, nil
	}

	payload, err := o.svc.Result(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if payload == nil || len(payload.TopRecommendations) == 0 {
		return nil, ErrNotFound
	}
	return FromPayload(payload, sessionID), nil
}

// Clear drops the cached snapshot, returning the machine to idle.
func (o *Orchestrator) Clear(ctx context.Context) error {
	o.state = StateIdle
	o.lastErr = nil
	return o.cache.Remove(ctx, resultsKey)
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	o.lastErr = err
	return err
}
