package jwt

import (
	"errors"
	"math"
	"time"

	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	domainjwt "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/jwt"
	"github.com/Miraines/StudyPlanner/backend/internal/infra/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretNotSet      = errors.New("jwt secret not set")
	ErrInvalidExpiration = errors.New("expiration time out of range")
)

const (
	msgSecretNotSet      = "JWT_SECRET not set"
	msgInvalidExpiration = "Invalid expiration time"
)

type JwtUtilImpl struct {
	secret   string
	validity time.Duration
	now      func() time.Time
}

var _ domainjwt.TokenIssuer = (*JwtUtilImpl)(nil)

func NewJWTUtil(cfg *config.Config) *JwtUtilImpl {
	return &JwtUtilImpl{
		secret:   cfg.JWTSecret,
		validity: domainjwt.Validity,
		now:      time.Now,
	}
}

// WithClock replaces the time source for issuance and validation.
func (j *JwtUtilImpl) WithClock(now func() time.Time) *JwtUtilImpl {
	cp := *j
	cp.now = now
	return &cp
}

func (j *JwtUtilImpl) Issue(subjectID string) (string, error) {
	if j.secret == "" {
		return "", customErrors.WrapAuthentication(ErrSecretNotSet, msgSecretNotSet)
	}

	now := j.now()
	exp, err := expiry(now, j.validity)
	if err != nil {
		return "", customErrors.WrapAuthentication(err, msgInvalidExpiration)
	}

	claims := domainjwt.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secret))
	if err != nil {
		return "", customErrors.WrapAuthentication(err, "sign token")
	}
	return signed, nil
}

func (j *JwtUtilImpl) Validate(raw string) (string, error) {
	if j.secret == "" {
		return "", customErrors.WrapAuthentication(ErrSecretNotSet, customErrors.MsgInvalidToken)
	}

	token, err := jwt.ParseWithClaims(raw, &domainjwt.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.NewAuthentication(customErrors.MsgInvalidToken)
		}
		return []byte(j.secret), nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))

	if err != nil || !token.Valid {
		return "", customErrors.WrapAuthentication(err, customErrors.MsgInvalidToken)
	}

	claims, ok := token.Claims.(*domainjwt.Claims)
	if !ok || claims.Subject == "" {
		return "", customErrors.NewAuthentication(customErrors.MsgInvalidToken)
	}
	return claims.Subject, nil
}

// expiry rejects results that wrap around or fall outside the range
// time.UnixNano can represent.
func expiry(now time.Time, validity time.Duration) (time.Time, error) {
	exp := now.Add(validity)
	if exp.Before(now) || exp.Unix() > math.MaxInt64/int64(time.Second) {
		return time.Time{}, ErrInvalidExpiration
	}
	return exp, nil
}
