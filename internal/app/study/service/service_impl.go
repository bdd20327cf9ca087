package service

import (
	"context"

	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	authmodel "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	authrepo "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/repo"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/model"
	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type studyService struct {
	accounts authrepo.AccountRepo
	cache    authrepo.ProfileCache
	study    repo.StudyRepo
	log      *zap.Logger
}

func (s *studyService) Profile(ctx context.Context, userID string) (authmodel.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return authmodel.Profile{}, customErrors.NewAuthentication(customErrors.MsgInvalidToken)
	}

	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn("profile cache read failed", zap.String("id", userID), zap.Error(err))
		} else if ok {
			return p, nil
		}
	}

	account, err := s.accounts.GetAccountByID(ctx, id)
	if err != nil {
		// A valid token for a vanished account is treated as a bad token.
		if customErrors.IsNotFound(err) {
			return authmodel.Profile{}, customErrors.NewAuthentication(customErrors.MsgInvalidToken)
		}
		return authmodel.Profile{}, customErrors.WrapDatabase(err, "GetAccountByID")
	}

	p := account.Profile()
	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			s.log.Warn("profile cache write failed", zap.String("id", userID), zap.Error(err))
		}
	}
	return p, nil
}

func (s *studyService) Subjects(ctx context.Context, userID string) ([]model.Subject, error) {
	out, err := s.study.SubjectsByUser(ctx, userID)
	if err != nil {
		return nil, customErrors.WrapDatabase(err, "SubjectsByUser")
	}
	return out, nil
}

func (s *studyService) Progress(ctx context.Context, userID string) ([]model.Progress, error) {
	out, err := s.study.ProgressByUser(ctx, userID)
	if err != nil {
		return nil, customErrors.WrapDatabase(err, "ProgressByUser")
	}
	return out, nil
}

func (s *studyService) Tasks(ctx context.Context, userID, subjectID string) ([]model.Task, error) {
	if subjectID == "" {
		return nil, customErrors.NewValidation("subject_id is required")
	}
	out, err := s.study.TasksBySubject(ctx, userID, subjectID)
	if err != nil {
		return nil, customErrors.WrapDatabase(err, "TasksBySubject")
	}
	return out, nil
}

func (s *studyService) Sessions(ctx context.Context, userID, taskID string) ([]model.StudySession, error) {
	if taskID == "" {
		return nil, customErrors.NewValidation("task_id is required")
	}
	out, err := s.study.SessionsByTask(ctx, userID, taskID)
	if err != nil {
		return nil, customErrors.WrapDatabase(err, "SessionsByTask")
	}
	return out, nil
}
