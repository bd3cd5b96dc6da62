package model

import (
	"time"
)

// User is the single profile entity of the service. Experience points and
// points are always written together and stay numerically equal; level and
// level_name are derived from experience_points via util.ComputeLevel.
type User struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	KakaoID          string    `gorm:"size:100;uniqueIndex;not null" json:"-"`
	Username         string    `gorm:"size:100;not null;default:''" json:"username"`
	Email            string    `gorm:"size:100;not null;default:''" json:"email"`
	ProfileImageURL  *string   `gorm:"size:255" json:"profile_image_url"`
	ExperiencePoints int       `gorm:"not null;default:0" json:"experience_points"`
	Points           int       `gorm:"not null;default:0" json:"points"`
	Level            int       `gorm:"not null;default:1" json:"level"`
	LevelName        string    `gorm:"size:20;not null;default:'관심인'" json:"level_name"`
	Benefits         string    `gorm:"size:255;not null;default:''" json:"benefits"`
	Description      string    `gorm:"size:255;not null;default:''" json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// RefreshToken stores issued refresh tokens so logout can revoke them.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"size:512;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// LevelInfo is the payload of GET /users/{id}/level.
type LevelInfo struct {
	Level            int    `json:"level"`
	LevelName        string `json:"level_name"`
	ExperiencePoints int    `json:"experience_points"`
}
