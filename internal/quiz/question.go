// Package quiz holds the question types and the session-scoped cache of
// in-progress answers.
package quiz

// Answer values are ratings on a fixed 1-10 scale.
const (
	MinAnswer = 1
	MaxAnswer = 10
)

// Question mirrors the question bank wire shape. The bank itself is remote;
// this is only the client-side view of it.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"question_text"`
	Category string `json:"category_display"`
}

// RequiredIDs extracts the ids a complete answer set must cover.
func RequiredIDs(questions []Question) []int {
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
