package model

import "time"

// Reward source types.
const (
	RewardSourceQuiz    = "quiz"
	RewardSourceBikeLog = "bike_log"
	RewardSourceCourse  = "course"
	RewardSourceManual  = "manual"
)

// Reward is an append-only audit record of a point-awarding event.
// Rows are never updated or deleted.
type Reward struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	ExperiencePoints int       `gorm:"not null;default:0" json:"experience_points"`
	RewardReason     string    `gorm:"size:255;not null;default:''" json:"reward_reason"`
	SourceType       string    `gorm:"size:30;not null;default:''" json:"source_type"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
