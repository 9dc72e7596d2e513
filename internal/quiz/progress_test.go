package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/adesai/careerlens/internal/store"
)

func TestRecordAndLoad(t *testing.T) {
	p := NewProgress(store.Memory())
	ctx := context.Background()

	// Record out of order; load must return exactly the recorded entries.
	for _, rec := range []struct{ id, value int }{{3, 8}, {1, 5}, {2, 10}} {
		if err := p.Record(ctx, rec.id, rec.value); err != nil {
			t.Fatalf("record %d: %v", rec.id, err)
		}
	}

	answers, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := map[int]int{1: 5, 2: 10, 3: 8}
	if len(answers) != len(want) {
		t.Fatalf("got %d answers, want %d", len(answers), len(want))
	}
	for id, v := range want {
		if answers[id] != v {
			t.Errorf("answers[%d] = %d, want %d", id, answers[id], v)
		}
	}
}

func TestRecordOverwritesSingleQuestion(t *testing.T) {
	p := NewProgress(store.Memory())
	ctx := context.Background()

	p.Record(ctx, 1, 4)
	p.Record(ctx, 1, 9)

	answers, _ := p.Load(ctx)
	if answers[1] != 9 {
		t.Errorf("answers[1] = %d, want 9", answers[1])
	}
	if len(answers) != 1 {
		t.Errorf("len = %d, want 1", len(answers))
	}
}

func TestRecordRejectsOutOfRange(t *testing.T) {
	p := NewProgress(store.Memory())
	ctx := context.Background()

	for _, v := range []int{0, 11, -3} {
		err := p.Record(ctx, 1, v)
		var rangeErr *ErrAnswerRange
		if !errors.As(err, &rangeErr) {
			t.Errorf("record(%d) error = %v, want ErrAnswerRange", v, err)
		}
	}

	answers, _ := p.Load(ctx)
	if len(answers) != 0 {
		t.Errorf("rejected answers were persisted: %v", answers)
	}
}

func TestLoadEmptyAndClear(t *testing.T) {
	p := NewProgress(store.Memory())
	ctx := context.Background()

	answers, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("fresh cache not empty: %v", answers)
	}

	p.Record(ctx, 1, 5)
	if err := p.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	answers, _ = p.Load(ctx)
	if len(answers) != 0 {
		t.Errorf("answers survived Clear: %v", answers)
	}
}
