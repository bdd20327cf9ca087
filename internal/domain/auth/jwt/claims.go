package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is the lifetime of every issued token.
const Validity = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(subjectID string) (token string, err error)
	Validate(token string) (subjectID string, err error)
}
