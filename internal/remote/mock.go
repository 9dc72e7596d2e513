package remote

import (
	"context"

	"github.com/adesai/careerlens/internal/quiz"
)

// Mock is a configurable Service for tests and offline development.
// Zero value: every call succeeds with empty data.
type Mock struct {
	QuestionsFunc    func(ctx context.Context) ([]quiz.Question, error)
	SubmitFunc       func(ctx context.Context, sessionID string, answers map[int]int) error
	RecommendFunc    func(ctx context.Context, sessionID string, topN int) (*Payload, error)
	ResultFunc       func(ctx context.Context, sessionID string) (*Payload, error)
	ViewCareerFunc   func(ctx context.Context, sessionID, career string) error
	CareersFunc      func(ctx context.Context) ([]Career, error)
	CareerDetailFunc func(ctx context.Context, id int) (*CareerDetail, error)

	// Calls records the method names invoked, in order.
	Calls []string
}

var _ Service = (*Mock)(nil)

func (m *Mock) Questions(ctx context.Context) ([]quiz.Question, error) {
	m.Calls = append(m.Calls, "Questions")
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc(ctx)
	}
	return nil, nil
}

func (m *Mock) Submit(ctx context.Context, sessionID string, answers map[int]int) error {
	m.Calls = append(m.Calls, "Submit")
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sessionID, answers)
	}
	return nil
}

func (m *Mock) Recommend(ctx context.Context, sessionID string, topN int) (*Payload, error) {
	m.Calls = append(m.Calls, "Recommend")
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, sessionID, topN)
	}
	return &Payload{}, nil
}

func (m *Mock) Result(ctx context.Context, sessionID string) (*Payload, error) {
	m.Calls = append(m.Calls, "Result")
	if m.ResultFunc != nil {
		return m.ResultFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *Mock) ViewCareer(ctx context.Context, sessionID, career string) error {
	m.Calls = append(m.Calls, "ViewCareer")
	if m.ViewCareerFunc != nil {
		return m.ViewCareerFunc(ctx, sessionID, career)
	}
	return nil
}

func (m *Mock) Careers(ctx context.Context) ([]Career, error) {
	m.Calls = append(m.Calls, "Careers")
	if m.CareersFunc != nil {
		return m.CareersFunc(ctx)
	}
	return nil, nil
}

func (m *Mock) CareerDetail(ctx context.Context, id int) (*CareerDetail, error) {
	m.Calls = append(m.Calls, "CareerDetail")
	if m.CareerDetailFunc != nil {
		return m.CareerDetailFunc(ctx, id)
	}
	return nil, nil
}
