package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/carbon/pkg/idx"
	"github.com/aussiebroadwan/carbon/pkg/jwtx"
)

var (
	ErrInvalidToken = errors.New("invalid_token")
	ErrExpiredToken = errors.New("expired_token")
)

// TokenService issues and verifies stateless session tokens. Nothing about a
// session is stored server side; rotating the secret invalidates every token.
type TokenService struct {
	Signer   *jwtx.HS256Signer
	Verifier *jwtx.HS256Verifier
	Issuer   string

	// Now is the issuance clock. Defaults to time.Now.
	Now func() time.Time
}

// NewTokenService builds signer and verifier around one shared secret.
func NewTokenService(secret []byte, issuer string) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, issuer)
	if err != nil {
		return nil, err
	}
	return &TokenService{Signer: signer, Verifier: verifier, Issuer: issuer, Now: time.Now}, nil
}

// Issue returns a token for userID that expires exactly one hour from now.
func (s *TokenService) Issue(userID, username string) (string, error) {
	claims := jwtx.NewSessionClaims(userID, username, s.Issuer, jwtx.DefaultSessionTTL, s.now())
	return s.Signer.Sign(claims)
}

// Verify returns the user ID carried by token. Expired tokens yield
// ErrExpiredToken; every other failure is ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return "", ErrExpiredToken
	case err != nil:
		return "", ErrInvalidToken
	}

	if _, err := idx.Parse(claims.Subject); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *TokenService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
