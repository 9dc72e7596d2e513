package quiz

import (
	"context"
	"fmt"

	"github.com/adesai/careerlens/internal/store"
)

// answersKey is the session-scoped key holding the in-progress answer map.
const answersKey = "quizAnswers"

// ErrAnswerRange indicates a recorded value outside the 1-10 scale.
type ErrAnswerRange struct {
	QuestionID int
	Value      int
}

func (e *ErrAnswerRange) Error() string {
	return fmt.Sprintf("answer %d for question %d outside %d-%d", e.Value, e.QuestionID, MinAnswer, MaxAnswer)
}

// Progress is the session-scoped answer cache. The map grows monotonically
// within a session and the full map is persisted after every mutation, so
// an in-progress quiz survives a reload within the same session.
type Progress struct {
	kv store.KV // session scope
}

// NewProgress creates a Progress cache over the session-scoped store.
func NewProgress(sessionKV store.KV) *Progress {
	return &Progress{kv: sessionKV}
}

// Record merges one answer into the map and persists the whole map, not a
// delta.
func (p *Progress) Record(ctx context.Context, questionID, value int) error {
	if value < MinAnswer || value > MaxAnswer {
		return &ErrAnswerRange{QuestionID: questionID, Value: value}
	}

	answers, err := p.Load(ctx)
	if err != nil {
		return err
	}
	answers[questionID] = value
	return store.SetJSON(ctx, p.kv, answersKey, answers)
}

// Load returns the saved answer map, empty when nothing is saved.
func (p *Progress) Load(ctx context.Context) (map[int]int, error) {
	answers := make(map[int]int)
	if _, err := store.GetJSON(ctx, p.kv, answersKey, &answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = make(map[int]int)
	}
	return answers, nil
}

// Clear drops the saved answers.
func (p *Progress) Clear(ctx context.Context) error {
	return p.kv.Remove(ctx, answersKey)
}
