package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestScopesAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Session().Set(ctx, "k", `"session"`); err != nil {
		t.Fatalf("session set: %v", err)
	}
	if err := s.Durable().Set(ctx, "k", `"durable"`); err != nil {
		t.Fatalf("durable set: %v", err)
	}

	if err := s.Session().Clear(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	if _, ok, _ := s.Session().Get(ctx, "k"); ok {
		t.Error("session key survived Clear")
	}
	v, ok, err := s.Durable().Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("durable get after session clear: ok=%v err=%v", ok, err)
	}
	if v != `"durable"` {
		t.Errorf("durable value = %q, want %q", v, `"durable"`)
	}
}

func TestResetWipesEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.Durable().Set(ctx, "users", `[]`)
	s.Session().Set(ctx, "sessionId", `"session_1_abc"`)
	s.RequestLog().Append(ctx, RequestRecord{Method: "GET", Endpoint: "/quiz/questions/", Status: 200, Success: true})

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, ok, _ := s.Durable().Get(ctx, "users"); ok {
		t.Error("durable key survived Reset")
	}
	if _, ok, _ := s.Session().Get(ctx, "sessionId"); ok {
		t.Error("session key survived Reset")
	}
	recs, err := s.RequestLog().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent after reset: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("request log has %d records after Reset, want 0", len(recs))
	}
}
