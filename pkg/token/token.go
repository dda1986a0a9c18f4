package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("invalid token")

// Claims carried in the HS256 session token. Subject is the user id.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

func Issue(secret []byte, userID, email, fullName, phone string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies the signature and expiry and rejects non-HMAC tokens.
func Parse(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret, nil
	})
	if err != nil || !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
