// Package auth issues and parses the signed session tokens handed out after
// a successful login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed token payload: the identity id and email plus the
// registered expiry claims.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 tokens. It is stateless and safe for
// concurrent use.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string

	method jwt.SigningMethod
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration, issuer string) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token validity must be positive, got %s", ttl)
	}
	k := make([]byte, len(secret))
	copy(k, secret)
	return &TokenIssuer{
		secret: k,
		ttl:    ttl,
		issuer: issuer,
		method: jwt.SigningMethodHS256,
		now:    time.Now,
	}, nil
}

// Issue signs a token for id. A signing failure is reported as a generic
// internal fault.
func (t *TokenIssuer) Issue(id models.Identity) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(t.method, Claims{
		UserID: id.ID,
		Email:  id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", common.Internal("sign token", err)
	}

	return signed, nil
}

// Parse validates the signature, algorithm and expiry of tokenString.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Email == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
