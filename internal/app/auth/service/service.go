package service

import (
	"context"
	"time"

	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/dto"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/hasher"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/jwt"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/repo"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	Register(ctx context.Context, in dto.RegisterDTO) (model.Registration, error)
	Login(ctx context.Context, in dto.LoginDTO) (token string, err error)
	// Authenticate resolves a bearer token to the account id it was issued for.
	Authenticate(ctx context.Context, token string) (accountID string, err error)
}

func New(
	accounts repo.AccountRepo,
	h hasher.PasswordHasher,
	issuer jwt.TokenIssuer,
	v *validator.Validate,
) Service {
	return &authService{
		accounts: accounts,
		hasher:   h,
		issuer:   issuer,
		v:        v,
		now:      time.Now,
	}
}
