package ports

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: nothing is stored server-side.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (TokenClaims, error)
}
