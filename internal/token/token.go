// Package token implements the signed session credential. Claims are a
// snapshot of the user at issuance; they are not refreshed from the store,
// so role or username changes only take effect at the next sign-in.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for every verification failure: bad signature,
// malformed token, expired timestamp. Callers must treat all of them as
// "no session" and never learn which one it was.
var ErrInvalid = errors.New("invalid token")

// Claims is the payload baked into a session token.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens with a server-held secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. TTL is fixed per deployment (24h for the
// login flow).
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the given identity snapshot.
func (i *Issuer) Issue(userID, username, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Verifier checks session tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token, returning its claims. Every failure
// mode collapses into ErrInvalid.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
