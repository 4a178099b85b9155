package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bibliotech/catalog-api/internal/core/domain"
	"github.com/bibliotech/catalog-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed bearer tokens carrying the
// subject id and role, with a fixed lifetime from issuance.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. A missing signing secret is a
// configuration error, not a per-request one, so it fails construction.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, mapping every failure mode to a
// typed domain error. Attacker-supplied garbage never panics.
func (s *TokenService) Verify(token string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return ports.TokenClaims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return ports.TokenClaims{}, domain.ErrTokenInvalid
		default:
			return ports.TokenClaims{}, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return ports.TokenClaims{}, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return ports.TokenClaims{}, domain.ErrTokenMalformed
	}
	return ports.TokenClaims{UserID: sub, Role: role}, nil
}
