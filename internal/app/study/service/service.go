package service

import (
	"context"

	authmodel "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	authrepo "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/repo"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/model"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/repo"
	"go.uber.org/zap"
)

// Service serves the read-only study endpoints. Every call is scoped to the
// account id resolved from the caller's token.
type Service interface {
	Profile(ctx context.Context, userID string) (authmodel.Profile, error)
	Subjects(ctx context.Context, userID string) ([]model.Subject, error)
	Progress(ctx context.Context, userID string) ([]model.Progress, error)
	Tasks(ctx context.Context, userID, subjectID string) ([]model.Task, error)
	Sessions(ctx context.Context, userID, taskID string) ([]model.StudySession, error)
}

// New builds the service. cache may be nil.
func New(
	accounts authrepo.AccountRepo,
	cache authrepo.ProfileCache,
	study repo.StudyRepo,
	log *zap.Logger,
) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &studyService{
		accounts: accounts,
		cache:    cache,
		study:    study,
		log:      log,
	}
}
