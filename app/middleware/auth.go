package appMiddleware

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserIDKey contextKey = "userID"
const GuestIDKey contextKey = "guestID"

// Claims mirrors the token shape minted by the external identity provider.
// This service only validates; it never issues tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// InitJWTSecret loads the token signing secret from the environment. There
// is no default: validating against a published fallback would accept
// forged tokens, so startup must fail instead.
func InitJWTSecret() error {
	key := os.Getenv("PONDY_JWT_SECRET")
	if key == "" {
		return errors.New("PONDY_JWT_SECRET is not set")
	}
	jwtSecret = []byte(key)
	return nil
}
