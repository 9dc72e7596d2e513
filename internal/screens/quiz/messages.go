package quiz

import (
	quizdata "github.com/adesai/careerlens/internal/quiz"
	"github.com/adesai/careerlens/internal/results"
)

// questionsLoadedMsg is sent when the question list arrives, along with any
// previously saved answers for resuming.
type questionsLoadedMsg struct {
	Questions []quizdata.Question
	Saved     map[int]int
	Err       error
}

// resultsReadyMsg is sent when the submit → recommend cycle finishes.
type resultsReadyMsg struct {
	Snapshot *results.Snapshot
	Err      error
}
