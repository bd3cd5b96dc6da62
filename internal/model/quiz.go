package model

import "time"

type QuizType string

const (
	QuizTypeSelect QuizType = "select"
	QuizTypeOX     QuizType = "ox"
	QuizTypeInput  QuizType = "input"
)

// Quiz is static catalog data; rows are seeded and never mutated at runtime.
type Quiz struct {
	ID              uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Question        string   `gorm:"size:500;not null" json:"question"`
	Answers         []string `gorm:"serializer:json;type:text" json:"answers"`
	CorrectAnswer   string   `gorm:"size:255;not null" json:"correct_answer"`
	Explanation     string   `gorm:"size:1000;not null;default:''" json:"explanation"`
	HintLink        string   `gorm:"size:500;not null;default:''" json:"hint_link"`
	HintDescription string   `gorm:"size:500;not null;default:''" json:"hint_description"`
	DisplayDate     string   `gorm:"size:10;index;not null" json:"display_date"`
	QuizType        QuizType `gorm:"size:10;not null;default:'select'" json:"quiz_type"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizAttempt records one answer submission.
type QuizAttempt struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	QuizID           uint      `gorm:"index;not null" json:"quiz_id"`
	Answer           string    `gorm:"size:255;not null" json:"answer"`
	IsCorrect        bool      `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned     int       `gorm:"not null;default:0" json:"points_earned"`
	ExperienceEarned int       `gorm:"not null;default:0" json:"experience_earned"`
	CreatedAt        time.Time `json:"created_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizAttemptResult is the payload of POST /quizzes/{id}/attempt.
type QuizAttemptResult struct {
	IsCorrect        bool `json:"is_correct"`
	PointsEarned     int  `json:"points_earned"`
	ExperienceEarned int  `json:"experience_earned"`
	RewardGiven      bool `json:"reward_given"`
}

// QuizStatus is the payload of GET /quizzes/today/status.
type QuizStatus struct {
	Attempted bool `json:"attempted"`
	IsCorrect bool `json:"is_correct"`
}
