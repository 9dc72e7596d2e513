// Package remote is the client for the recommendation service. The service
// computes the actual recommendations; this package only consumes it,
// validates its payloads at the boundary, and reports failures in terms the
// state layer understands.
package remote

import (
	"context"

	"github.com/adesai/careerlens/internal/quiz"
)

// Service is the core abstraction for recommendation service interaction.
// Consumers hold this interface so tests can substitute a Mock.
type Service interface {
	// Questions fetches the ordered question bank.
	Questions(ctx context.Context) ([]quiz.Question, error)

	// Submit sends a completed answer set for the session. A response of
	// {success: false} surfaces as *ErrRemote carrying the remote-reported
	// reason, or a generic message when none is given.
	Submit(ctx context.Context, sessionID string, answers map[int]int) error

	// Recommend asks the service to compute the top-N recommendations for
	// a submitted session. The payload is schema-validated before return;
	// an empty recommendation list is NOT an error here — the orchestrator
	// decides how to treat it.
	Recommend(ctx context.Context, sessionID string, topN int) (*Payload, error)

	// Result fetches a previously computed payload by session id.
	// Returns (nil, nil) when the service has nothing for this session.
	Result(ctx context.Context, sessionID string) (*Payload, error)

	// ViewCareer reports a career detail view. Acknowledgement only;
	// callers treat it as fire-and-forget.
	ViewCareer(ctx context.Context, sessionID, career string) error

	// Careers fetches the browsable career catalog, summary fields only.
	Careers(ctx context.Context) ([]Career, error)

	// CareerDetail fetches one career's full profile by id, including its
	// courses and universities. Returns (nil, nil) when the id is unknown.
	CareerDetail(ctx context.Context, id int) (*CareerDetail, error)
}

// Recommendation is one entry of the ordered recommendation list.
type Recommendation struct {
	Career             string   `json:"career"`
	CompatibilityScore float64  `json:"compatibility_score"`
	Explanation        string   `json:"explanation,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	SuitableFor        string   `json:"suitable_for,omitempty"`
}

// Payload is the recommendation service's result shape. Only the
// recommendation list is required on the wire; everything else is optional
// and defaulted downstream.
type Payload struct {
	TopRecommendations   []Recommendation   `json:"top_recommendations"`
	Abilities            map[string]float64 `json:"abilities,omitempty"`
	PrimaryCareer        string             `json:"primary_career,omitempty"`
	PrimaryCompatibility float64            `json:"primary_compatibility,omitempty"`
	SessionID            string             `json:"session_id,omitempty"`
}

// Career is one catalog entry as the list endpoint returns it.
type Career struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	AverageSalaryRange string `json:"average_salary_range,omitempty"`
	JobGrowth          string `json:"job_growth,omitempty"`
}

// CareerDetail is the full career profile the by-id endpoint returns.
type CareerDetail struct {
	Career
	RequiredSkills    []string     `json:"required_skills,omitempty"`
	SuitableFor       string       `json:"suitable_for,omitempty"`
	TypicalCompanies  []string     `json:"typical_companies,omitempty"`
	RequiredEducation string       `json:"required_education,omitempty"`
	RelatedCareers    []string     `json:"related_careers,omitempty"`
	Courses           []Course     `json:"courses,omitempty"`
	Universities      []University `json:"universities,omitempty"`
}

// Course is a learning resource attached to a career.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Difficulty  string `json:"difficulty_level,omitempty"`
}

// University offers a program relevant to a career.
type University struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Program  string `json:"program_name,omitempty"`
	URL      string `json:"url,omitempty"`
	Ranking  int    `json:"ranking,omitempty"`
}
