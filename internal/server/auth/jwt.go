// Package auth signs and verifies the HS256 tokens handed to clients after
// registration or login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the owner id and access kind.
// ID (jti) is random so two tokens issued in the same second still differ.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Access string `json:"access"`
}

// GenerateToken signs a token for userID. A zero validity produces a token
// without an expiry claim; such tokens stay valid until revoked server side.
func GenerateToken(userID string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
		Access: common.AccessAuth,
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature, structure, expiry and access kind.
// Expired tokens yield common.ErrTokenExpired, anything else wrong
// yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Access != common.AccessAuth || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
