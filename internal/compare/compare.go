// Package compare computes per-ability matrices and trend deltas over
// selected history entries. Pure computation, nothing is persisted.
package compare

import (
	"fmt"
	"math"
	"sort"

	"github.com/adesai/careerlens/internal/history"
)

// MaxSelections bounds how many attempts one comparison covers.
const MaxSelections = 3

// Selection pairs a ledger entry with its 1-based position in the full
// ledger, which is what column labels show.
type Selection struct {
	LedgerIndex int // 0-based, 0 = newest
	Entry       history.Entry
}

// Row is one ability across all selected attempts, in column order.
type Row struct {
	Ability string
	Scores  []float64
}

// Result is the comparison matrix for one selection set. It is recomputed
// on demand and discarded after display.
type Result struct {
	Columns []string
	Rows    []Row

	// HasDelta is set only when exactly two attempts are compared.
	// Delta is the signed change from the earlier attempt to the later one.
	HasDelta bool
	Delta    int

	// Consistent reports whether every selection shares the first
	// selection's primary career.
	Consistent bool
}

// ErrSelectionCount reports a selection set outside 1..MaxSelections.
type ErrSelectionCount struct {
	Count int
}

func (e *ErrSelectionCount) Error() string {
	return fmt.Sprintf("comparison takes 1 to %d attempts, got %d", MaxSelections, e.Count)
}

// Compare builds the matrix for the selected attempts. The ability rows are
// driven by the first selection's ability snapshot; abilities a later attempt
// never measured score 0 in its column. Scores are rounded to one decimal.
func Compare(selections []Selection) (*Result, error) {
	if len(selections) == 0 || len(selections) > MaxSelections {
		return nil, &ErrSelectionCount{Count: len(selections)}
	}

	res := &Result{
		Columns:    make([]string, 0, len(selections)),
		Consistent: true,
	}
	for _, sel := range selections {
		res.Columns = append(res.Columns, columnLabel(sel))
		if sel.Entry.PrimaryCareer != selections[0].Entry.PrimaryCareer {
			res.Consistent = false
		}
	}

	abilities := make([]string, 0, len(selections[0].Entry.Abilities))
	for name := range selections[0].Entry.Abilities {
		abilities = append(abilities, name)
	}
	sort.Strings(abilities)

	for _, name := range abilities {
		row := Row{Ability: name, Scores: make([]float64, 0, len(selections))}
		for _, sel := range selections {
			row.Scores = append(row.Scores, round1(sel.Entry.Abilities[name]))
		}
		res.Rows = append(res.Rows, row)
	}

	if len(selections) == 2 {
		later, earlier := selections[0], selections[1]
		// The smaller ledger index is the more recent attempt.
		if earlier.LedgerIndex < later.LedgerIndex {
			later, earlier = earlier, later
		}
		res.HasDelta = true
		res.Delta = later.Entry.Compatibility - earlier.Entry.Compatibility
	}
	return res, nil
}

func columnLabel(sel Selection) string {
	return fmt.Sprintf("Quiz %d (%s)", sel.LedgerIndex+1, sel.Entry.Date.Format("2006-01-02"))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
