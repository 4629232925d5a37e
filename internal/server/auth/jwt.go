// Package auth issues and verifies the signed tokens handed to clients.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the typ claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload for both token kinds. Subject is the user id,
// ID is the jti. FamilyID is set on refresh tokens only.
type Claims struct {
	jwt.RegisteredClaims
	Type     string `json:"typ"`
	FamilyID string `json:"fam,omitempty"`
}

// IssuedRefresh describes a freshly minted refresh token.
type IssuedRefresh struct {
	Token     string
	ID        string
	FamilyID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issuer signs tokens with a single HMAC key (HS256).
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	leeway     time.Duration
	now        func() time.Time
}

func NewIssuer(secret []byte, accessTTL, refreshTTL, leeway time.Duration) *Issuer {
	return &Issuer{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		leeway:     leeway,
		now:        time.Now,
	}
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	c := *i
	c.now = now
	return &c
}

func (i *Issuer) AccessTTL() time.Duration  { return i.accessTTL }
func (i *Issuer) RefreshTTL() time.Duration { return i.refreshTTL }

// IssueAccess signs a short-lived access token for userID.
func (i *Issuer) IssueAccess(userID string) (string, error) {
	now := i.now()
	return i.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
		Type: TokenTypeAccess,
	})
}

// IssueRefresh signs a refresh token in familyID with a fresh jti.
func (i *Issuer) IssueRefresh(userID, familyID string) (*IssuedRefresh, error) {
	now := i.now()
	out := &IssuedRefresh{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		IssuedAt:  now,
		ExpiresAt: now.Add(i.refreshTTL),
	}

	token, err := i.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        out.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(out.ExpiresAt),
		},
		Type:     TokenTypeRefresh,
		FamilyID: familyID,
	})
	if err != nil {
		return nil, err
	}
	out.Token = token
	return out, nil
}

// VerifyAccess checks an access token and returns its subject.
func (i *Issuer) VerifyAccess(token string) (string, error) {
	claims, err := i.verify(token, TokenTypeAccess)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// VerifyRefresh checks a refresh token and returns its claims.
func (i *Issuer) VerifyRefresh(token string) (*Claims, error) {
	claims, err := i.verify(token, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" || claims.FamilyID == "" {
		return nil, fmt.Errorf("%w: refresh token without id or family", common.ErrInvalidToken)
	}
	return claims, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

func (i *Issuer) sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (i *Issuer) verify(tokenString, typ string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(i.leeway),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, fmt.Errorf("%w: expected %s token, got %q", common.ErrInvalidToken, typ, claims.Type)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	return claims, nil
}
