package model

type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Task struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Deadline        *string `json:"deadline"`
	DifficultyLevel *int32  `json:"difficulty_level"`
}

type StudySession struct {
	ID          string `json:"id"`
	ScheduledAt string `json:"scheduled_at"`
	// Minutes.
	Duration  int32 `json:"duration"`
	Completed bool  `json:"completed"`
}

type Progress struct {
	SubjectID      string `json:"subject_id"`
	CompletedTasks int32  `json:"completed_tasks"`
	TotalTasks     int32  `json:"total_tasks"`
}
