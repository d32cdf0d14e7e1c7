// Package identity answers "who is the current caller" for bearer tokens.
package identity

import (
	"context"
	"errors"
	"sync"
)

// ErrUnauthenticated is returned when a token is missing, unknown or revoked.
var ErrUnauthenticated = errors.New("unauthenticated")

// Caller is an authenticated user.
type Caller struct {
	Username string `json:"username"`
}

// Provider resolves callers and signs them out.
type Provider interface {
	CurrentCaller(ctx context.Context, token string) (*Caller, error)
	SignOut(ctx context.Context, token string) error
}

// TokenProvider authenticates static tokens. Signed-out tokens stay revoked
// for the lifetime of the process.
type TokenProvider struct {
	users map[string]string

	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewTokenProvider creates a provider from a token -> username map.
func NewTokenProvider(tokens map[string]string) *TokenProvider {
	users := make(map[string]string, len(tokens))
	for token, user := range tokens {
		users[token] = user
	}
	return &TokenProvider{
		users:   users,
		revoked: make(map[string]struct{}),
	}
}

// CurrentCaller returns the caller owning token.
func (p *TokenProvider) CurrentCaller(_ context.Context, token string) (*Caller, error) {
	user, ok := p.users[token]
	if token == "" || !ok {
		return nil, ErrUnauthenticated
	}

	p.mu.RLock()
	_, revoked := p.revoked[token]
	p.mu.RUnlock()
	if revoked {
		return nil, ErrUnauthenticated
	}

	return &Caller{Username: user}, nil
}

// SignOut revokes token.
func (p *TokenProvider) SignOut(ctx context.Context, token string) error {
	if _, err := p.CurrentCaller(ctx, token); err != nil {
		return err
	}

	p.mu.Lock()
	p.revoked[token] = struct{}{}
	p.mu.Unlock()
	return nil
}
