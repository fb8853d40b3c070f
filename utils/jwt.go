package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire after 24h; there is no refresh flow, expiry forces re-login.
const tokenTTL = 24 * time.Hour

// signingKey reads the environment on every call so a secret loaded from
// .env after package init (config.Load runs godotenv in main) is honored.
func signingKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("supersecret")
}

// Claims is the verified identity attached to authenticated requests.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

func GenerateToken(userID int64, email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"role":   role,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(signingKey())
}

// VerifyToken rejects bad signatures, wrong algorithms, malformed and
// expired tokens alike.
func VerifyToken(token string) (Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
	if err != nil || !parsedToken.Valid {
		return Claims{}, errors.New("invalid token")
	}

	mapClaims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	userID, ok := mapClaims["userId"].(float64)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{UserID: int64(userID), Email: email, Role: role}, nil
}
