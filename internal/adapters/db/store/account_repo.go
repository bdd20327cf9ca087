package store

import (
	"context"

	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (p *AccountRepo) CreateAccount(ctx context.Context, a model.Account) error {
	rec := toRecord(a)
	if err := p.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return customErrors.ErrAlreadyExists
		}
		return errors.Wrap(err, "CreateAccount")
	}
	return nil
}

func (p *AccountRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (model.Account, error) {
	return p.first(ctx, "FindByUsernameOrEmail", "username = ? OR email = ?", username, email)
}

func (p *AccountRepo) GetAccountByUsername(ctx context.Context, username string) (model.Account, error) {
	return p.first(ctx, "GetAccountByUsername", "username = ?", username)
}

func (p *AccountRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	return p.first(ctx, "GetAccountByID", "id = ?", id.String())
}

func (p *AccountRepo) first(ctx context.Context, op, query string, args ...any) (model.Account, error) {
	var rec accountRecord
	res := p.db.WithContext(ctx).Where(query, args...).Take(&rec)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Account{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Account{}, errors.Wrap(err, op)
	}

	a, err := rec.toModel()
	if err != nil {
		return model.Account{}, errors.Wrapf(err, "%s: decode row", op)
	}
	return a, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
