package model

import (
	"time"
)

// MealLogModel mirrors the 'meal_logs' table.
type MealLogModel struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	UserID     uint64 `gorm:"not null;index:idx_meal_logs_user_consumed"`
	Name       string `gorm:"type:varchar(255);not null"`
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	ConsumedAt time.Time `gorm:"not null;index:idx_meal_logs_user_consumed"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealLogModel) TableName() string {
	return "meal_logs"
}

// WorkoutLogModel mirrors the 'workout_logs' table.
type WorkoutLogModel struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	UserID         uint64 `gorm:"not null;index:idx_workout_logs_user_performed"`
	Activity       string `gorm:"type:varchar(255);not null"`
	DurationMin    int
	CaloriesBurned int
	PerformedAt    time.Time `gorm:"not null;index:idx_workout_logs_user_performed"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutLogModel) TableName() string {
	return "workout_logs"
}

// SuggestionModel mirrors the 'ai_suggestions' table.
type SuggestionModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	Kind      string `gorm:"type:varchar(20);not null"`
	Content   string `gorm:"type:text;not null"`
	Model     string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SuggestionModel) TableName() string {
	return "ai_suggestions"
}

// FeedbackModel mirrors the 'suggestion_feedback' table.
type FeedbackModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	Kind      string `gorm:"type:varchar(20);not null"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "suggestion_feedback"
}
