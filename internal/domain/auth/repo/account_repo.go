package repo

import (
	"context"

	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/google/uuid"
)

type AccountRepo interface {
	// CreateAccount returns errors.ErrAlreadyExists when a unique constraint
	// on username or email rejects the row.
	CreateAccount(ctx context.Context, a model.Account) error

	// FindByUsernameOrEmail returns errors.ErrNotFound when neither matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (model.Account, error)

	GetAccountByUsername(ctx context.Context, username string) (model.Account, error)

	GetAccountByID(ctx context.Context, id uuid.UUID) (model.Account, error)
}

// ProfileCache is optional; a miss is reported as ok == false with a nil error.
type ProfileCache interface {
	Get(ctx context.Context, id string) (p model.Profile, ok bool, err error)
	Set(ctx context.Context, p model.Profile) error
}
