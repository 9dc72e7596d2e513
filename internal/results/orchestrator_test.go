package results

import (
	"context"
	"errors"
	"testing"

	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/store"
)

var testPayload = &remote.Payload{
	TopRecommendations: []remote.Recommendation{
		{Career: "Data Scientist", CompatibilityScore: 87.5},
		{Career: "UX Designer", CompatibilityScore: 74},
	},
	Abilities:            map[string]float64{"logical_thinking": 8.2},
	PrimaryCareer:        "Data Scientist",
	PrimaryCompatibility: 87.5,
}

func TestRunHappyPath(t *testing.T) {
	svc := &remote.Mock{
		RecommendFunc: func(_ context.Context, _ string, topN int) (*remote.Payload, error) {
			if topN != DefaultTopN {
				t.Errorf("topN = %d, want %d", topN, DefaultTopN)
			}
			return testPayload, nil
		},
	}
	cache := store.Memory()
	o := NewOrchestrator(svc, cache)
	ctx := context.Background()

	snap, err := o.Run(ctx, "sid", map[int]int{1: 5, 2: 8}, []int{1, 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if o.State() != StateCached {
		t.Errorf("state = %v, want cached", o.State())
	}
	if snap.PrimaryCareer != "Data Scientist" {
		t.Errorf("primary = %q", snap.PrimaryCareer)
	}

	// Submit before recommend, recommend before cache write.
	want := []string{"Submit", "Recommend"}
	if len(svc.Calls) != 2 || svc.Calls[0] != want[0] || svc.Calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", svc.Calls, want)
	}
	if _, ok, _ := cache.Get(ctx, "results"); !ok {
		t.Error("snapshot not cached")
	}
}

func TestRunValidationFailureIsLocal(t *testing.T) {
	svc := &remote.Mock{}
	o := NewOrchestrator(svc, store.Memory())

	_, err := o.Run(context.Background(), "sid", map[int]int{1: 5}, []int{1, 2, 3})
	var vErr *ErrValidation
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if len(vErr.Missing) != 2 || vErr.Missing[0] != 2 || vErr.Missing[1] != 3 {
		t.Errorf("missing = %v, want [2 3]", vErr.Missing)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("validation failure reached the network: %v", svc.Calls)
	}
}

func TestRunSubmitFailure(t *testing.T) {
	remoteErr := &remote.ErrRemote{Message: "session expired"}
	svc := &remote.Mock{
		SubmitFunc: func(context.Context, string, map[int]int) error { return remoteErr },
	}
	o := NewOrchestrator(svc, store.Memory())

	_, err := o.Run(context.Background(), "sid", map[int]int{1: 5}, []int{1})
	if !errors.Is(err, remoteErr) {
		t.Fatalf("error = %v, want the remote submit failure verbatim", err)
	}
	if o.State() != StateFailed {
		t.Errorf("state = %v, want failed", o.State())
	}
	if o.Failure() == nil {
		t.Error("Failure() is nil in failed state")
	}
	// Recommend must not run after a failed submit.
	for _, c := range svc.Calls {
		if c == "Recommend" {
			t.Error("recommend called after submit failure")
		}
	}
}

func TestRunRejectsEmptyPayload(t *testing.T) {
	svc := &remote.Mock{
		RecommendFunc: func(context.Context, string, int) (*remote.Payload, error) {
			return &remote.Payload{TopRecommendations: []remote.Recommendation{}}, nil
		},
	}
	cache := store.Memory()
	o := NewOrchestrator(svc, cache)
	ctx := context.Background()

	_, err := o.Run(ctx, "sid", map[int]int{1: 5}, []int{1})
	if !errors.Is(err, ErrNoRecommendations) {
		t.Fatalf("error = %v, want ErrNoRecommendations", err)
	}
	if o.State() != StateFailed {
		t.Errorf("state = %v, want failed even though the call succeeded", o.State())
	}
	if _, ok, _ := cache.Get(ctx, "results"); ok {
		t.Error("empty payload reached the cache")
	}
}

func TestLoadCacheFirst(t *testing.T) {
	svc := &remote.Mock{}
	cache := store.Memory()
	o := NewOrchestrator(svc, cache)
	ctx := context.Background()

	store.SetJSON(ctx, cache, "results", FromPayload(testPayload, "sid"))

	snap, err := o.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.PrimaryCareer != "Data Scientist" {
		t.Errorf("primary = %q", snap.PrimaryCareer)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("cache hit still called the service: %v", svc.Calls)
	}
}

func TestLoadFallsBackWhenCacheUnusable(t *testing.T) {
	tests := []struct {
		name  string
		prime func(ctx context.Context, cache store.KV)
	}{
		{"empty cache", func(context.Context, store.KV) {}},
		{"cached snapshot with empty list", func(ctx context.Context, cache store.KV) {
			store.SetJSON(ctx, cache, "results", &Snapshot{SessionID: "sid"})
		}},
		{"corrupt cache entry", func(ctx context.Context, cache store.KV) {
			cache.Set(ctx, "results", `{broken`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &remote.Mock{
				ResultFunc: func(_ context.Context, sid string) (*remote.Payload, error) {
					if sid != "sid" {
						t.Errorf("session id = %q", sid)
					}
					return testPayload, nil
				},
			}
			cache := store.Memory()
			o := NewOrchestrator(svc, cache)
			ctx := context.Background()
			tt.prime(ctx, cache)

			snap, err := o.Load(ctx, "sid")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if snap.PrimaryCareer != "Data Scientist" {
				t.Errorf("primary = %q", snap.PrimaryCareer)
			}
			if len(svc.Calls) != 1 || svc.Calls[0] != "Result" {
				t.Errorf("calls = %v, want one Result fetch", svc.Calls)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	svc := &remote.Mock{} // Result returns nil, nil
	o := NewOrchestrator(svc, store.Memory())

	_, err := o.Load(context.Background(), "sid")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSnapshotDefaulting(t *testing.T) {
	p := &remote.Payload{
		TopRecommendations: []remote.Recommendation{
			{Career: "UX Designer", CompatibilityScore: 74},
		},
	}
	snap := FromPayload(p, "session_9_abcdefghi")
	if snap.PrimaryCareer != "UX Designer" {
		t.Errorf("primary career not defaulted from list head: %q", snap.PrimaryCareer)
	}
	if snap.PrimaryCompatibility != 74 {
		t.Errorf("primary compatibility not defaulted: %v", snap.PrimaryCompatibility)
	}
	if snap.SessionID != "session_9_abcdefghi" {
		t.Errorf("session id not defaulted: %q", snap.SessionID)
	}
	if snap.Abilities == nil {
		t.Error("abilities not defaulted to empty map")
	}
}

func TestSnapshotOverwrittenWholesale(t *testing.T) {
	svc := &remote.Mock{
		RecommendFunc: func(context.Context, string, int) (*remote.Payload, error) {
			return testPayload, nil
		},
	}
	cache := store.Memory()
	o := NewOrchestrator(svc, cache)
	ctx := context.Background()

	o.Run(ctx, "sid", map[int]int{1: 5}, []int{1})

	svc.RecommendFunc = func(context.Context, string, int) (*remote.Payload, error) {
		return &remote.Payload{
			TopRecommendations: []remote.Recommendation{{Career: "Architect", CompatibilityScore: 60}},
		}, nil
	}
	o.Run(ctx, "sid2", map[int]int{1: 5}, []int{1})

	snap, err := o.Load(ctx, "sid2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.PrimaryCareer != "Architect" || len(snap.Recommendations) != 1 {
		t.Errorf("cache not replaced wholesale: %+v", snap)
	}
}
