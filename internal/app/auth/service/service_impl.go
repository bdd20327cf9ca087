package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/hasher"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/jwt"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/repo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var fieldMessages = map[string]string{
	"Username": "Username must be at least 3 characters long",
	"Email":    "Invalid email address",
	"Password": "Password must be at least 6 characters long",
}

type authService struct {
	accounts repo.AccountRepo
	hasher   hasher.PasswordHasher
	issuer   jwt.TokenIssuer
	v        *validator.Validate
	now      func() time.Time

	// dummyHash is verified against for unknown usernames so both login
	// failures cost one hash comparison. Empty until a computation succeeds.
	dummyMu   sync.Mutex
	dummyHash string
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) (model.Registration, error) {
	if err := a.validate(in); err != nil {
		return model.Registration{}, err
	}

	_, err := a.accounts.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	switch {
	case err == nil:
		return model.Registration{}, customErrors.NewValidation(customErrors.MsgAlreadyExists)
	case !customErrors.IsNotFound(err):
		return model.Registration{}, customErrors.WrapDatabase(err, "FindByUsernameOrEmail")
	}

	passwordHash, err := a.hasher.Hash(ctx, in.Password)
	if err != nil {
		return model.Registration{}, asHashing(err, "Register")
	}

	account := model.Account{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC().Truncate(time.Microsecond),
	}
	if err := a.accounts.CreateAccount(ctx, account); err != nil {
		// The unique constraints decide races the pre-check could not see.
		if customErrors.IsAlreadyExists(err) {
			return model.Registration{}, customErrors.NewValidation(customErrors.MsgAlreadyExists)
		}
		return model.Registration{}, customErrors.WrapDatabase(err, "CreateAccount")
	}

	token, err := a.issue(account.ID)
	if err != nil {
		return model.Registration{}, err
	}

	return model.Registration{Profile: account.Profile(), Token: token}, nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (string, error) {
	if err := a.validate(in); err != nil {
		return "", err
	}

	account, err := a.accounts.GetAccountByUsername(ctx, in.Username)
	if err != nil {
		a.burnVerify(ctx, in.Password)
		return "", customErrors.NewAuthentication(customErrors.MsgInvalidCredentials)
	}

	ok, err := a.hasher.Verify(ctx, in.Password, account.PasswordHash)
	if err != nil {
		return "", asHashing(err, "Login")
	}
	if !ok {
		return "", customErrors.NewAuthentication(customErrors.MsgInvalidCredentials)
	}

	return a.issue(account.ID)
}

func (a *authService) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", customErrors.NewAuthentication(customErrors.MsgInvalidToken)
	}
	sub, err := a.issuer.Validate(token)
	if err != nil {
		return "", customErrors.WrapAuthentication(err, customErrors.MsgInvalidToken)
	}
	return sub, nil
}

func (a *authService) issue(id uuid.UUID) (string, error) {
	token, err := a.issuer.Issue(id.String())
	if err != nil {
		if customErrors.IsAuthentication(err) {
			return "", err
		}
		return "", customErrors.WrapAuthentication(err, "Token issuance failed")
	}
	return token, nil
}

func (a *authService) burnVerify(ctx context.Context, password string) {
	if dummy := a.dummy(ctx); dummy != "" {
		_, _ = a.hasher.Verify(ctx, password, dummy)
	}
}

// dummy computes the dummy hash outside the caller's cancellation, so one
// aborted request cannot leave it unset for every later one.
func (a *authService) dummy(ctx context.Context) string {
	a.dummyMu.Lock()
	defer a.dummyMu.Unlock()
	if a.dummyHash == "" {
		if h, err := a.hasher.Hash(context.WithoutCancel(ctx), uuid.NewString()); err == nil {
			a.dummyHash = h
		}
	}
	return a.dummyHash
}

// validate reports one sentence per failing field, without a "field:" prefix,
// joined with "; ". The sentences are what clients show to users.
func (a *authService) validate(in any) error {
	err := a.v.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return customErrors.NewValidation(err.Error())
	}

	var msgs []string
	seen := make(map[string]bool)
	for _, fe := range fieldErrs {
		if seen[fe.StructField()] {
			continue
		}
		seen[fe.StructField()] = true
		if msg, ok := fieldMessages[fe.StructField()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fe.Error())
		}
	}
	return customErrors.NewValidation(strings.Join(msgs, "; "))
}

func asHashing(err error, context string) error {
	if customErrors.IsHashing(err) {
		return err
	}
	return customErrors.WrapHashing(err, context)
}
