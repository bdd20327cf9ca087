package store

import (
	"context"

	"github.com/Miraines/StudyPlanner/backend/internal/domain/study/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type StudyRepo struct {
	db *gorm.DB
}

func NewStudyRepo(db *gorm.DB) *StudyRepo {
	return &StudyRepo{db: db}
}

func (s *StudyRepo) SubjectsByUser(ctx context.Context, userID string) ([]model.Subject, error) {
	var recs []subjectRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "SubjectsByUser")
	}

	out := make([]model.Subject, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.Subject{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out, nil
}

func (s *StudyRepo) ProgressByUser(ctx context.Context, userID string) ([]model.Progress, error) {
	var recs []progressRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "ProgressByUser")
	}

	out := make([]model.Progress, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.Progress{
			SubjectID:      r.SubjectID,
			CompletedTasks: r.CompletedTasks,
			TotalTasks:     r.TotalTasks,
		})
	}
	return out, nil
}

func (s *StudyRepo) TasksBySubject(ctx context.Context, userID, subjectID string) ([]model.Task, error) {
	var recs []taskRecord
	err := s.db.WithContext(ctx).
		Joins("JOIN subjects ON subjects.id = tasks.subject_id").
		Where("tasks.subject_id = ? AND subjects.user_id = ?", subjectID, userID).
		Order("tasks.created_at, tasks.id").
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "TasksBySubject")
	}

	out := make([]model.Task, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.Task{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			Deadline:        r.Deadline,
			DifficultyLevel: r.DifficultyLevel,
		})
	}
	return out, nil
}

func (s *StudyRepo) SessionsByTask(ctx context.Context, userID, taskID string) ([]model.StudySession, error) {
	var recs []sessionRecord
	err := s.db.WithContext(ctx).
		Joins("JOIN tasks ON tasks.id = study_sessions.task_id").
		Joins("JOIN subjects ON subjects.id = tasks.subject_id").
		Where("study_sessions.task_id = ? AND subjects.user_id = ?", taskID, userID).
		Order("study_sessions.scheduled_at, study_sessions.id").
		Find(&recs).Error
	if err != nil {
		return nil, errors.Wrap(err, "SessionsByTask")
	}

	out := make([]model.StudySession, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.StudySession{
			ID:          r.ID,
			ScheduledAt: r.ScheduledAt,
			Duration:    r.Duration,
			Completed:   r.Completed,
		})
	}
	return out, nil
}
