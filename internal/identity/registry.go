// Package identity stores credential records and the current-user pointer.
//
// Credentials are kept verbatim in the durable store, password included.
// That reproduces the observed demo behavior and is not acceptable outside
// of it; real deployments authenticate server-side with salted hashing.
package identity

import (
	"context"
	"strings"

	"github.com/adesai/careerlens/internal/store"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// Credential is one registered user record. Records are never mutated in
// place; they are removed only by a full data reset.
type Credential struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registry manages credentials and the signed-in user pointer.
type Registry struct {
	kv store.KV // durable scope
}

// NewRegistry creates a Registry over the durable store.
func NewRegistry(durableKV store.KV) *Registry {
	return &Registry{kv: durableKV}
}

// Register appends a new credential record and signs the user in.
// Returns ErrDuplicateUsername when the username is already taken and
// ErrInvalidInput when a field fails local validation.
func (r *Registry) Register(ctx context.Context, username, email, password string) error {
	if err := validateInput(username, email, password); err != nil {
		return err
	}

	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username {
			return ErrDuplicateUsername
		}
	}

	users = append(users, Credential{Username: username, Email: email, Password: password})
	if err := store.SetJSON(ctx, r.kv, usersKey, users); err != nil {
		return err
	}
	return r.SetCurrentUser(ctx, username)
}

// Authenticate returns the credential matching username and password
// exactly, or ok=false. It does not change the current-user pointer.
func (r *Registry) Authenticate(ctx context.Context, username, password string) (Credential, bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return Credential{}, false, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, true, nil
		}
	}
	return Credential{}, false, nil
}

// CurrentUser returns the signed-in username; ok=false means unauthenticated.
func (r *Registry) CurrentUser(ctx context.Context) (string, bool, error) {
	var username string
	ok, err := store.GetJSON(ctx, r.kv, currentUserKey, &username)
	if err != nil || !ok || username == "" {
		return "", false, err
	}
	return username, true, nil
}

// SetCurrentUser points the registry at username.
func (r *Registry) SetCurrentUser(ctx context.Context, username string) error {
	return store.SetJSON(ctx, r.kv, currentUserKey, username)
}

// Logout clears the pointer only; credential records stay intact.
func (r *Registry) Logout(ctx context.Context) error {
	return r.kv.Remove(ctx, currentUserKey)
}

func (r *Registry) load(ctx context.Context) ([]Credential, error) {
	var users []Credential
	if _, err := store.GetJSON(ctx, r.kv, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func validateInput(username, email, password string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return &ErrInvalidInput{Field: "username", Reason: "must not be empty"}
	case strings.TrimSpace(password) == "":
		return &ErrInvalidInput{Field: "password", Reason: "must not be empty"}
	case !strings.Contains(email, "@"):
		return &ErrInvalidInput{Field: "email", Reason: "must contain @"}
	}
	return nil
}
