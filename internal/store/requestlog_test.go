package store

import (
	"context"
	"testing"
)

func TestRequestLogAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	log := s.RequestLog()
	ctx := context.Background()

	records := []RequestRecord{
		{Method: "POST", Endpoint: "/quiz/submit/", Status: 200, LatencyMs: 40, Success: true},
		{Method: "POST", Endpoint: "/results/recommend/", Status: 200, LatencyMs: 320, Success: true},
		{Method: "POST", Endpoint: "/results/recommend/", Status: 500, LatencyMs: 12, Success: false, ErrorMessage: "internal error"},
	}
	for _, r := range records {
		if err := log.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := log.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d records, want 3", len(recent))
	}
	// Newest first.
	if recent[0].Endpoint != "/results/recommend/" || recent[0].Status != 500 {
		t.Errorf("newest record = %+v, want the failed recommend call", recent[0])
	}
	if recent[0].Timestamp.IsZero() {
		t.Error("timestamp not defaulted on append")
	}
}

func TestRequestLogStatsByEndpoint(t *testing.T) {
	s := openTestStore(t)
	log := s.RequestLog()
	ctx := context.Background()

	log.Append(ctx, RequestRecord{Method: "POST", Endpoint: "/results/recommend/", Status: 200, LatencyMs: 100, Success: true})
	log.Append(ctx, RequestRecord{Method: "POST", Endpoint: "/results/recommend/", Status: 502, LatencyMs: 300, Success: false})
	log.Append(ctx, RequestRecord{Method: "GET", Endpoint: "/quiz/questions/", Status: 200, LatencyMs: 20, Success: true})

	stats, err := log.StatsByEndpoint(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d endpoints, want 2", len(stats))
	}
	top := stats[0]
	if top.Endpoint != "/results/recommend/" || top.Calls != 2 || top.Failures != 1 {
		t.Errorf("top endpoint = %+v, want recommend with 2 calls, 1 failure", top)
	}
	if top.AvgLatencyMs != 200 {
		t.Errorf("avg latency = %v, want 200", top.AvgLatencyMs)
	}
}
