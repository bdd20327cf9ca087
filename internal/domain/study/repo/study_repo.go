package repo

import (
	"context"

	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/model"
)

type StudyRepo interface {
	SubjectsByUser(ctx context.Context, userID string) ([]model.Subject, error)
	ProgressByUser(ctx context.Context, userID string) ([]model.Progress, error)
	TasksBySubject(ctx context.Context, userID, subjectID string) ([]model.Task, error)
	SessionsByTask(ctx context.Context, userID, taskID string) ([]model.StudySession, error)
}
