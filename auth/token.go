package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parmaworld/parmaworld-api/httperr"
)

// Claims is the decoded identity assertion carried by a token. Email is the
// only claim the server relies on; Raw keeps whatever else the client signed
// in.
type Claims struct {
	Email string
	Raw   jwt.MapClaims
}

// TokenService issues and verifies HS256 tokens with a fixed expiry. There
// is no refresh mechanism; clients request a new token when theirs expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the submitted identity claims, stamping iat and exp.
func (s *TokenService) Issue(identity map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Every failure mode (malformed,
// bad signature, expired, wrong algorithm) collapses to ErrUnauthenticated;
// callers never learn which check failed.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, httperr.ErrUnauthenticated
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, httperr.ErrUnauthenticated
	}

	email, _ := mapClaims["email"].(string)
	if email == "" {
		return Claims{}, httperr.ErrUnauthenticated
	}

	return Claims{Email: email, Raw: mapClaims}, nil
}
