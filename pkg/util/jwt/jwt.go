package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig holds the signing secret and token lifetime.
type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// Package-level config, set once by Init.
var jwtConfig *JWTConfig

// Init initialises the JWT configuration.
func Init(secret string, expiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Claims carried by a session token. The display fields are embedded so
// downstream handlers and the chat relay never have to re-query the member
// row just to label a broadcast.
type Claims struct {
	MemberID string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Photo    string `json:"photo,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed, time-boxed session token for a member.
func GenerateToken(memberID, email, role, name, photo string) (string, error) {
	claims := Claims{
		MemberID: memberID,
		Email:    email,
		Role:     role,
		Name:     name,
		Photo:    photo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "powerhouse_stokvel",
			Subject:   "session_token",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// ParseToken verifies the signature and expiry of a token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
