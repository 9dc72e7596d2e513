package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/adesai/careerlens/internal/store"
)

func newTestRegistry() *Registry {
	return NewRegistry(store.Memory())
}

func TestRegisterSignsUserIn(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	if err := r.Register(ctx, "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	user, ok, err := r.CurrentUser(ctx)
	if err != nil || !ok {
		t.Fatalf("current user: ok=%v err=%v", ok, err)
	}
	if user != "alice" {
		t.Errorf("current user = %q, want %q", user, "alice")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	if err := r.Register(ctx, "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(ctx, "alice", "other@example.com", "other")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("second register error = %v, want ErrDuplicateUsername", err)
	}

	// Exactly one record remains, the original.
	cred, ok, _ := r.Authenticate(ctx, "alice", "secret")
	if !ok {
		t.Fatal("original credential lost")
	}
	if cred.Email != "alice@example.com" {
		t.Errorf("email = %q, want original record untouched", cred.Email)
	}
	if _, ok, _ := r.Authenticate(ctx, "alice", "other"); ok {
		t.Error("duplicate registration created a second record")
	}
}

func TestRegisterInputValidation(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	tests := []struct {
		name                      string
		username, email, password string
	}{
		{"empty username", "", "a@b.com", "pw"},
		{"blank username", "   ", "a@b.com", "pw"},
		{"empty password", "alice", "a@b.com", ""},
		{"malformed email", "alice", "not-an-email", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(ctx, tt.username, tt.email, tt.password)
			var invalid *ErrInvalidInput
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAuthenticateExactMatch(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()
	r.Register(ctx, "alice", "alice@example.com", "secret")

	tests := []struct {
		name               string
		username, password string
		want               bool
	}{
		{"match", "alice", "secret", true},
		{"wrong password", "alice", "Secret", false},
		{"unknown user", "bob", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := r.Authenticate(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if ok != tt.want {
				t.Errorf("ok = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestLogoutKeepsCredentials(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()
	r.Register(ctx, "alice", "alice@example.com", "secret")

	if err := r.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := r.CurrentUser(ctx); ok {
		t.Error("still authenticated after logout")
	}
	if _, ok, _ := r.Authenticate(ctx, "alice", "secret"); !ok {
		t.Error("credentials removed by logout")
	}
}
