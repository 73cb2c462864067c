package client

import (
	"context"
	"sync"

	"github.com/saavyshop/storefront/internal/client/localstore"
)

const secretStorageKey = "saavyshop-admin-password"

// AdminSession holds the last-verified admin secret and whether the server
// accepted it.  The server keeps no session state: every mutating request
// carries the secret independently; this type only remembers it between
// runs.  The store is optional — with a nil store the session is purely
// in-memory.
type AdminSession struct {
	client *Client
	store  *localstore.Store

	mu            sync.Mutex
	secret        string
	authenticated bool
}

// NewAdminSession creates a session.  Call Resume to re-verify a secret
// remembered from a previous run.
func NewAdminSession(c *Client, store *localstore.Store) *AdminSession {
	return &AdminSession{client: c, store: store}
}

// Resume loads the stored secret, if any, and verifies it against the
// server.  It reports whether the session ended up authenticated.
func (s *AdminSession) Resume(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	secret, ok, err := s.store.Get(ctx, secretStorageKey)
	if err != nil || !ok {
		return false, err
	}
	return s.Verify(ctx, secret)
}

// Verify checks a candidate secret against the admin gate.  On acceptance
// the secret is remembered (and persisted when a store is attached); on
// rejection any remembered secret is cleared.  A transport failure leaves
// the session state untouched and is returned as an error.
func (s *AdminSession) Verify(ctx context.Context, candidate string) (bool, error) {
	err := s.client.Verify(ctx, candidate)
	if err == nil {
		s.mu.Lock()
		s.secret = candidate
		s.authenticated = true
		s.mu.Unlock()
		if s.store != nil {
			if serr := s.store.Set(ctx, secretStorageKey, candidate); serr != nil {
				return true, serr
			}
		}
		return true, nil
	}
	if IsUnauthorized(err) {
		s.mu.Lock()
		s.secret = ""
		s.authenticated = false
		s.mu.Unlock()
		if s.store != nil {
			_ = s.store.Delete(ctx, secretStorageKey)
		}
		return false, nil
	}
	return false, err
}

// Logout forgets the secret locally.  There is nothing to revoke server
// side.
func (s *AdminSession) Logout(ctx context.Context) {
	s.mu.Lock()
	s.secret = ""
	s.authenticated = false
	s.mu.Unlock()
	if s.store != nil {
		_ = s.store.Delete(ctx, secretStorageKey)
	}
}

// Secret returns the last verified secret ("" when unauthenticated).
func (s *AdminSession) Secret() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secret
}

// IsAuthenticated reports whether the server accepted the current secret.
func (s *AdminSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
