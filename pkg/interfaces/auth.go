package interfaces

// TokenProvider supplies the session token attached to authenticated API
// requests. Implementations own whatever storage backs the session; the
// admin client never reads ambient global state directly.
type TokenProvider interface {
	Token() (string, bool)
}

// TokenStore extends TokenProvider with mutation for login/logout flows.
type TokenStore interface {
	TokenProvider
	Set(token string)
	Clear()
}
