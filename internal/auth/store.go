// Package auth keeps the operator's session token in process memory and
// drives login and logout against the backend. Nothing here is persisted:
// restarting the process means logging in again.
package auth

import "sync/atomic"

// TokenStore holds the bearer token for the current session. Safe for
// concurrent use; the API client reads it on every authenticated request.
type TokenStore struct {
	token atomic.Value
}

// NewTokenStore constructs an empty store. Seed is optional and covers the
// case where a token arrives from the environment rather than a login call.
func NewTokenStore(seed string) *TokenStore {
	st := &TokenStore{}
	st.token.Store(seed)
	return st
}

// Token returns the current token and whether one is present.
func (s *TokenStore) Token() (string, bool) {
	if s == nil {
		return "", false
	}
	token, _ := s.token.Load().(string)
	return token, token != ""
}

// Set replaces the current token.
func (s *TokenStore) Set(token string) {
	if s == nil {
		return
	}
	s.token.Store(token)
}

// Clear drops the current token.
func (s *TokenStore) Clear() {
	if s == nil {
		return
	}
	s.token.Store("")
}
