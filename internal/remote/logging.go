package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adesai/careerlens/internal/quiz"
	"github.com/adesai/careerlens/internal/store"
)

// Recorder receives one record per service call. *store.RequestLog
// satisfies it.
type Recorder interface {
	Append(ctx context.Context, rec store.RequestRecord) error
}

// LoggingService is a decorator that records every service call.
type LoggingService struct {
	inner    Service
	recorder Recorder
}

var _ Service = (*LoggingService)(nil)

// WithLogging wraps a Service with call recording.
func WithLogging(s Service, recorder Recorder) Service {
	return &LoggingService{inner: s, recorder: recorder}
}

func (l *LoggingService) Questions(ctx context.Context) ([]quiz.Question, error) {
	start := time.Now()
	qs, err := l.inner.Questions(ctx)
	l.record(ctx, "GET", "/quiz/questions/", start, err)
	return qs, err
}

func (l *LoggingService) Submit(ctx context.Context, sessionID string, answers map[int]int) error {
	start := time.Now()
	err := l.inner.Submit(ctx, sessionID, answers)
	l.record(ctx, "POST", "/quiz/submit/", start, err)
	return err
}

func (l *LoggingService) Recommend(ctx context.Context, sessionID string, topN int) (*Payload, error) {
	start := time.Now()
	p, err := l.inner.Recommend(ctx, sessionID, topN)
	l.record(ctx, "POST", "/results/recommend/", start, err)
	return p, err
}

func (l *LoggingService) Result(ctx context.Context, sessionID string) (*Payload, error) {
	start := time.Now()
	p, err := l.inner.Result(ctx, sessionID)
	l.record(ctx, "GET", "/results/{session}/", start, err)
	return p, err
}

func (l *LoggingService) Careers(ctx context.Context) ([]Career, error) {
	start := time.Now()
	careers, err := l.inner.Careers(ctx)
	l.record(ctx, "GET", "/careers/", start, err)
	return careers, err
}

func (l *LoggingService) CareerDetail(ctx context.Context, id int) (*CareerDetail, error) {
	start := time.Now()
	detail, err := l.inner.CareerDetail(ctx, id)
	l.record(ctx, "GET", "/careers/{id}/", start, err)
	return detail, err
}

func (l *LoggingService) ViewCareer(ctx context.Context, sessionID, career string) error {
	start := time.Now()
	err := l.inner.ViewCareer(ctx, sessionID, career)
	l.record(ctx, "POST", "/results/view-career/", start, err)
	return err
}

// record appends one log row. Logging failures warn on stderr and never
// fail the request.
func (l *LoggingService) record(ctx context.Context, method, endpoint string, start time.Time, err error) {
	rec := store.RequestRecord{
		Method:    method,
		Endpoint:  endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
		var remoteErr *ErrRemote
		if errors.As(err, &remoteErr) {
			rec.Status = remoteErr.Status
		}
	} else {
		rec.Status = 200
	}

	if logErr := l.recorder.Append(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log API request: %v\n", logErr)
	}
}
