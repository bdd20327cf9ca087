package store

import (
	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/google/uuid"
)

// accountRecord mirrors the users table created by the migrations.
type accountRecord struct {
	ID           string `gorm:"primaryKey;type:text"`
	Username     string `gorm:"type:text;not null;uniqueIndex"`
	Email        string `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (accountRecord) TableName() string { return "users" }

func toRecord(a model.Account) accountRecord {
	return accountRecord{
		ID:           a.ID.String(),
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    model.FormatTimestamp(a.CreatedAt),
	}
}

func (r accountRecord) toModel() (model.Account, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Account{}, err
	}
	created, err := model.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return model.Account{}, err
	}
	return model.Account{
		ID:           id,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    created,
	}, nil
}

type subjectRecord struct {
	ID          string `gorm:"primaryKey;type:text"`
	UserID      string `gorm:"type:text;not null;index"`
	Name        string `gorm:"type:text;not null"`
	Description *string
	CreatedAt   string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (subjectRecord) TableName() string { return "subjects" }

type taskRecord struct {
	ID              string `gorm:"primaryKey;type:text"`
	SubjectID       string `gorm:"type:text;not null;index"`
	Title           string `gorm:"type:text;not null"`
	Description     *string
	Deadline        *string
	DifficultyLevel *int32
	CreatedAt       string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (taskRecord) TableName() string { return "tasks" }

type sessionRecord struct {
	ID          string `gorm:"primaryKey;type:text"`
	TaskID      string `gorm:"type:text;not null;index"`
	ScheduledAt string `gorm:"type:text;not null"`
	Duration    int32  `gorm:"not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (sessionRecord) TableName() string { return "study_sessions" }

type progressRecord struct {
	ID             string `gorm:"primaryKey;type:text"`
	UserID         string `gorm:"type:text;not null;index"`
	SubjectID      string `gorm:"type:text;not null"`
	CompletedTasks int32  `gorm:"not null;default:0"`
	TotalTasks     int32  `gorm:"not null;default:0"`
	CreatedAt      string `gorm:"type:text;not null;autoCreateTime:false"`
}

func (progressRecord) TableName() string { return "progress" }
