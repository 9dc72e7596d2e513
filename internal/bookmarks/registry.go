// Package bookmarks keeps the durable set of saved career names.
package bookmarks

import (
	"context"

	"github.com/adesai/careerlens/internal/store"
)

// bookmarksKey is the durable key holding the bookmark set.
const bookmarksKey = "bookmarks"

// Registry is the durable bookmark set. Writes are last-write-wins with no
// versioning; concurrent toggles from two processes can clobber each other.
type Registry struct {
	kv store.KV // durable scope
}

// NewRegistry creates a Registry over the durable store.
func NewRegistry(durableKV store.KV) *Registry {
	return &Registry{kv: durableKV}
}

// Toggle adds career when absent and removes it when present, then returns
// the resulting set.
func (r *Registry) Toggle(ctx context.Context, career string) ([]string, error) {
	set, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	next := set[:0]
	for _, c := range set {
		if c == career {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, career)
	}

	if err := store.SetJSON(ctx, r.kv, bookmarksKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Contains reports whether career is bookmarked.
func (r *Registry) Contains(ctx context.Context, career string) (bool, error) {
	set, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range set {
		if c == career {
			return true, nil
		}
	}
	return false, nil
}

// List returns the current set. No ordering is guaranteed.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	var set []string
	if _, err := store.GetJSON(ctx, r.kv, bookmarksKey, &set); err != nil {
		return nil, err
	}
	return set, nil
}

// Clear drops every bookmark.
func (r *Registry) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, bookmarksKey)
}
