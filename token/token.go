package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL bounds the lifetime of an issued token. Tokens are stateless: there is
// no server-side revocation, logout is the client discarding its copy.
const TTL = 8 * time.Hour

type Claims struct {
	AdminID int `json:"admin_id"`
	jwt.RegisteredClaims
}

// Issue signs a bearer token for adminID expiring TTL after now.
func Issue(adminID int, secret []byte, now time.Time) (string, error) {
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenStr and returns the admin id
// it was issued for.
func Verify(tokenStr string, secret []byte) (int, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}

	if !parsed.Valid || claims.AdminID == 0 {
		return 0, fmt.Errorf("invalid token")
	}
	return claims.AdminID, nil
}
