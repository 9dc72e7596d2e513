package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/adesai/careerlens/internal/quiz"
)

// Client talks to the recommendation service over JSON HTTP. Failed calls
// are never retried automatically; retrying is the caller's decision.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ Service = (*Client)(nil)

// NewClient creates a Client from config.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Questions(ctx context.Context) ([]quiz.Question, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/quiz/questions/", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Results []quiz.Question `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrInvalidPayload{Content: body, Err: fmt.Errorf("decode question list: %w", err)}
	}
	return out.Results, nil
}

func (c *Client) Submit(ctx context.Context, sessionID string, answers map[int]int) error {
	req := map[string]any{
		"session_id": sessionID,
		"answers":    answersWire(answers),
	}
	body, _, err := c.do(ctx, http.MethodPost, "/quiz/submit/", req)
	if err != nil {
		return err
	}

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return &ErrInvalidPayload{Content: body, Err: fmt.Errorf("decode submit response: %w", err)}
	}
	if !out.Success {
		return &ErrRemote{Message: out.Error}
	}
	return nil
}

func (c *Client) Recommend(ctx context.Context, sessionID string, topN int) (*Payload, error) {
	req := map[string]any{
		"session_id": sessionID,
		"top_n":      topN,
	}
	body, _, err := c.do(ctx, http.MethodPost, "/results/recommend/", req)
	if err != nil {
		return nil, err
	}
	return decodePayload(body)
}

func (c *Client) Result(ctx context.Context, sessionID string) (*Payload, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/results/"+sessionID+"/", nil)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out struct {
		Recommendation json.RawMessage `json:"recommendation"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrInvalidPayload{Content: body, Err: fmt.Errorf("decode result response: %w", err)}
	}
	if len(out.Recommendation) == 0 || string(out.Recommendation) == "null" {
		return nil, nil
	}
	return decodePayload(out.Recommendation)
}

func (c *Client) Careers(ctx context.Context) ([]Career, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/careers/", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Results []Career `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ErrInvalidPayload{Content: body, Err: fmt.Errorf("decode career list: %w", err)}
	}
	return out.Results, nil
}

func (c *Client) CareerDetail(ctx context.Context, id int) (*CareerDetail, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/careers/"+strconv.Itoa(id)+"/", nil)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var detail CareerDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, &ErrInvalidPayload{Content: body, Err: fmt.Errorf("decode career detail: %w", err)}
	}
	return &detail, nil
}

func (c *Client) ViewCareer(ctx context.Context, sessionID, career string) error {
	req := map[string]any{
		"session_id": sessionID,
		"career":     career,
	}
	_, _, err := c.do(ctx, http.MethodPost, "/results/view-career/", req)
	return err
}

// do performs one JSON request. Transport failures map to *ErrUnavailable,
// non-2xx statuses to *ErrRemote with the body's error field when present.
// The status is returned even alongside an error so callers can special-case
// 404.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &ErrUnavailable{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &ErrRemote{Status: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, resp.StatusCode, nil
}

// decodePayload schema-validates raw and unmarshals it.
func decodePayload(raw []byte) (*Payload, error) {
	if err := validatePayload(raw); err != nil {
		return nil, err
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return &p, nil
}

// answersWire converts the answer map to JSON-object form with string keys,
// the shape the service expects.
func answersWire(answers map[int]int) map[string]int {
	wire := make(map[string]int, len(answers))
	for id, v := range answers {
		wire[strconv.Itoa(id)] = v
	}
	return wire
}

// errorMessage extracts an error field from a failure body, if any.
func errorMessage(body []byte) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}
	return out.Error
}
