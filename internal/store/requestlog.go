package store

// API request log.
//
// Every outbound call to the recommendation service is recorded here by the
// remote package's logging decorator. The table uses raw SQL because the
// records are append-only rows with aggregate queries, not domain state.

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RequestRecord captures one recommendation service call.
type RequestRecord struct {
	ID           int64
	Timestamp    time.Time
	Method       string
	Endpoint     string
	Status       int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EndpointStats aggregates request outcomes for one endpoint.
type EndpointStats struct {
	Endpoint     string
	Calls        int
	Failures     int
	AvgLatencyMs float64
}

// RequestLog provides append and query access to the api_request_log table.
type RequestLog struct {
	db *sql.DB
}

// Append records one API call. Timestamp defaults to now when zero.
func (l *RequestLog) Append(ctx context.Context, rec RequestRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO api_request_log (timestamp, method, endpoint, status, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts, rec.Method, rec.Endpoint, rec.Status, rec.LatencyMs, boolToInt(rec.Success), rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append request record: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (l *RequestLog) Recent(ctx context.Context, limit int) ([]RequestRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, timestamp, method, endpoint, status, latency_ms, success, error_message
		 FROM api_request_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}
	defer rows.Close()

	var recs []RequestRecord
	for rows.Next() {
		var r RequestRecord
		var success int
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Method, &r.Endpoint, &r.Status, &r.LatencyMs, &success, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan request record: %w", err)
		}
		r.Success = success != 0
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// StatsByEndpoint aggregates call counts, failures, and mean latency per
// endpoint, ordered by call count descending.
func (l *RequestLog) StatsByEndpoint(ctx context.Context) ([]EndpointStats, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT endpoint, COUNT(*), SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), AVG(latency_ms)
		 FROM api_request_log GROUP BY endpoint ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query endpoint stats: %w", err)
	}
	defer rows.Close()

	var stats []EndpointStats
	for rows.Next() {
		var s EndpointStats
		if err := rows.Scan(&s.Endpoint, &s.Calls, &s.Failures, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan endpoint stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
