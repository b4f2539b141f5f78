package model

import (
	"time"
)

// UserModel mirrors the 'users' table. PostgreSQL generates IDs via bigserial.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	Name         string `gorm:"type:varchar(100)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	HealthProfile *HealthProfileModel `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// HealthProfileModel mirrors the 'health_profiles' table. UserID references users.id.
type HealthProfileModel struct {
	UserID             uint64 `gorm:"primaryKey"`
	Age                int
	HeightCm           float64
	WeightKg           float64
	Goal               string `gorm:"type:varchar(100)"`
	ActivityLevel      string `gorm:"type:varchar(50)"`
	DietaryPreferences string `gorm:"type:text"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthProfileModel) TableName() string {
	return "health_profiles"
}
