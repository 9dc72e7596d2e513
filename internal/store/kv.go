package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// KV is the contract every state component persists through. Values are
// structured data serialized to text on write and parsed on read. Each key
// is an independent write; there is no cross-key atomicity.
type KV interface {
	// Get returns the raw value for key, or ok=false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the full value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key in this scope.
	Clear(ctx context.Context) error
}

// sqlKV implements KV over one scope of the kv table.
type sqlKV struct {
	db    *sql.DB
	scope Scope
}

func (k *sqlKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE scope = ? AND key = ?`,
		string(k.scope), key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s/%s: %w", k.scope, key, err)
	}
	return value, true, nil
}

func (k *sqlKV) Set(ctx context.Context, key, value string) error {
	_, err := k.db.ExecContext(ctx,
		`INSERT INTO kv (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(k.scope), key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", k.scope, key, err)
	}
	return nil
}

func (k *sqlKV) Remove(ctx context.Context, key string) error {
	_, err := k.db.ExecContext(ctx,
		`DELETE FROM kv WHERE scope = ? AND key = ?`, string(k.scope), key)
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", k.scope, key, err)
	}
	return nil
}

func (k *sqlKV) Clear(ctx context.Context) error {
	_, err := k.db.ExecContext(ctx,
		`DELETE FROM kv WHERE scope = ?`, string(k.scope))
	if err != nil {
		return fmt.Errorf("clear %s: %w", k.scope, err)
	}
	return nil
}

// GetJSON reads key and unmarshals it into v. A corrupted or unparseable
// value degrades to absent (ok=false, nil error) rather than surfacing a
// fatal error to the caller; availability wins over strict consistency.
func GetJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(b))
}
