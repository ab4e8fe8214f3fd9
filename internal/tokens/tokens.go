package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/pkg/middleware"
)

// Claims is the admin access token payload. Subject carries the admin id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 admin tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// GenerateAccessToken creates a signed JWT for the admin
func (i *Issuer) GenerateAccessToken(a *models.Admin) (string, error) {
	if len(i.secret) == 0 {
		return "", errors.New("jwt secret not configured")
	}
	now := i.now()
	claims := Claims{
		Role: a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates signature, algorithm and expiry.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return &claims, nil
}

// Verify implements middleware.Verifier.
func (i *Issuer) Verify(ctx context.Context, raw string) (middleware.Principal, error) {
	c, err := i.Parse(raw)
	if err != nil {
		return middleware.Principal{}, err
	}
	return middleware.Principal{Subject: c.Subject, Role: c.Role}, nil
}
