// Package results drives the submit → compute → cache cycle and owns the
// session-scoped result snapshot.
package results

import (
	"github.com/adesai/careerlens/internal/remote"
)

// resultsKey is the session-scoped key holding the latest snapshot.
const resultsKey = "results"

// Snapshot is the full recommendation result for one completed quiz
// attempt. It is overwritten wholesale by the next completed quiz and never
// partially updated.
type Snapshot struct {
	PrimaryCareer        string                  `json:"primary_career"`
	PrimaryCompatibility float64                 `json:"primary_compatibility"`
	Recommendations      []remote.Recommendation `json:"top_recommendations"`
	Abilities            map[string]float64      `json:"abilities"`
	SessionID            string                  `json:"session_id"`
}

// FromPayload builds a Snapshot from a validated wire payload, applying the
// defaulting rules for optional fields: primary career/compatibility fall
// back to the head of the recommendation list, the session id to the one
// the caller asked about.
func FromPayload(p *remote.Payload, sessionID string) *Snapshot {
	snap := &Snapshot{
		PrimaryCareer:        p.PrimaryCareer,
		PrimaryCompatibility: p.PrimaryCompatibility,
		Recommendations:      p.TopRecommendations,
		Abilities:            p.Abilities,
		SessionID:            p.SessionID,
	}
	if snap.Abilities == nil {
		snap.Abilities = make(map[string]float64)
	}
	if snap.SessionID == "" {
		snap.SessionID = sessionID
	}
	if len(p.TopRecommendations) > 0 {
		if snap.PrimaryCareer == "" {
			snap.PrimaryCareer = p.TopRecommendations[0].Career
		}
		if snap.PrimaryCompatibility == 0 {
			snap.PrimaryCompatibility = p.TopRecommendations[0].CompatibilityScore
		}
	}
	return snap
}
