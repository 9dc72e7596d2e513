// Package session manages the opaque session token that ties a quiz run,
// its cached answers, and its cached results together.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/adesai/careerlens/internal/store"
)

// tokenKey is the session-scoped key holding the current token.
const tokenKey = "sessionId"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Manager lazily mints and returns the session token. The token stays
// stable for the life of the session; it is never regenerated unless the
// session is explicitly cleared.
type Manager struct {
	kv store.KV // session scope
}

// NewManager creates a Manager over the session-scoped store.
func NewManager(sessionKV store.KV) *Manager {
	return &Manager{kv: sessionKV}
}

// GetOrCreate returns the existing token, or mints
// session_<unix-ms>_<9-char-base36> and persists it.
func (m *Manager) GetOrCreate(ctx context.Context) (string, error) {
	var token string
	ok, err := store.GetJSON(ctx, m.kv, tokenKey, &token)
	if err != nil {
		return "", err
	}
	if ok && token != "" {
		return token, nil
	}

	token = mintToken(time.Now())
	if err := store.SetJSON(ctx, m.kv, tokenKey, token); err != nil {
		return "", err
	}
	return token, nil
}

// Get returns the current token without creating one. ok is false when no
// session exists.
func (m *Manager) Get(ctx context.Context) (string, bool, error) {
	var token string
	ok, err := store.GetJSON(ctx, m.kv, tokenKey, &token)
	if err != nil || !ok || token == "" {
		return "", false, err
	}
	return token, true, nil
}

// Clear ends the session: the token and every session-scoped cache
// (answers, results) are wiped together.
func (m *Manager) Clear(ctx context.Context) error {
	return m.kv.Clear(ctx)
}

// mintToken builds a token of the form session_<unix-ms>_<9-char-base36>.
func mintToken(now time.Time) string {
	var b strings.Builder
	for range 9 {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), b.String())
}
