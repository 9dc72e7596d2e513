// Package history keeps the per-user ledger of completed quiz attempts in
// durable storage.
package history

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/adesai/careerlens/internal/results"
	"github.com/adesai/careerlens/internal/store"
)

// DefaultRetention caps how many attempts a user's ledger keeps. Appending
// past the cap drops the oldest entries.
const DefaultRetention = 50

// Entry is one completed quiz attempt as recorded in a user's ledger.
type Entry struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	PrimaryCareer string             `json:"primary_career"`
	Compatibility int                `json:"compatibility"`
	TopCareers    []string           `json:"top_careers"`
	Abilities     map[string]float64 `json:"abilities"`
	SessionID     string             `json:"session_id"`
}

// ErrBadIndex reports a delete aimed at a position the ledger does not have.
type ErrBadIndex struct {
	Index int
	Len   int
}

func (e *ErrBadIndex) Error() string {
	return fmt.Sprintf("history index %d out of range (ledger holds %d entries)", e.Index, e.Len)
}

// Ledger reads and writes one user's attempt history. Entries are ordered
// newest first; index 0 is always the most recent attempt.
type Ledger struct {
	kv        store.KV // durable scope
	username  string
	retention int
}

// NewLedger opens the ledger for username over the durable scope.
func NewLedger(durableKV store.KV, username string) *Ledger {
	return &Ledger{kv: durableKV, username: username, retention: DefaultRetention}
}

func (l *Ledger) key() string {
	return "quiz_history_" + l.username
}

// Append prepends a new entry built from the snapshot, assigning it a fresh
// id and the current time, then trims the ledger to the retention cap.
func (l *Ledger) Append(ctx context.Context, snap *results.Snapshot) (*Entry, error) {
	entries, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	careers := make([]string, 0, len(snap.Recommendations))
	for _, r := range snap.Recommendations {
		careers = append(careers, r.Career)
	}
	entry := &Entry{
		ID:            uuid.NewString(),
		Date:          time.Now().UTC(),
		PrimaryCareer: snap.PrimaryCareer,
		Compatibility: int(math.Round(snap.PrimaryCompatibility)),
		TopCareers:    careers,
		Abilities:     snap.Abilities,
		SessionID:     snap.SessionID,
	}

	entries = append([]Entry{*entry}, entries...)
	if len(entries) > l.retention {
		entries = entries[:l.retention]
	}
	if err := store.SetJSON(ctx, l.kv, l.key(), entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries newest first. A missing or unreadable
// ledger reads as empty.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if _, err := store.GetJSON(ctx, l.kv, l.key(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteAt removes the entry at index (0 = newest) and persists the rest.
func (l *Ledger) DeleteAt(ctx context.Context, index int) error {
	entries, err := l.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return &ErrBadIndex{Index: index, Len: len(entries)}
	}
	entries = append(entries[:index], entries[index+1:]...)
	return store.SetJSON(ctx, l.kv, l.key(), entries)
}

// Replace overwrites the whole ledger, still honoring the retention cap.
func (l *Ledger) Replace(ctx context.Context, entries []Entry) error {
	if len(entries) > l.retention {
		entries = entries[:l.retention]
	}
	return store.SetJSON(ctx, l.kv, l.key(), entries)
}

// Clear erases the user's ledger.
func (l *Ledger) Clear(ctx context.Context) error {
	return l.kv.Remove(ctx, l.key())
}
