package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated identity plus the tenant context for
// multi-tenancy. TenantID is a pointer: a token without one can still
// authenticate, but tenant-scoped endpoints will reject it unless the
// request supplies an X-Tenant-Id header.
type Claims struct {
	Email    string      `json:"email"`
	UserID   int64       `json:"user_id"`
	TenantID *int64      `json:"tenant_id,omitempty"`
	Role     domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 access tokens.
type TokenIssuer struct {
	signingKey []byte
	lifetime   time.Duration
}

func NewTokenIssuer(signingKey string, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{signingKey: []byte(signingKey), lifetime: lifetime}
}

func (ti *TokenIssuer) Issue(u *domain.User) (string, error) {
	now := time.Now()
	tenantID := u.TenantID
	claims := Claims{
		Email:    u.Email,
		UserID:   u.ID,
		TenantID: &tenantID,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.signingKey)
}

func (ti *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return ti.signingKey, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
