package model

import "time"

// Verification states shared by bike logs and course recommendations.
// Transitions out of pending are admin-driven; no user-facing operation
// performs them.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// BikeLog is a photo-pair riding certification awaiting admin review.
type BikeLog struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint       `gorm:"index;not null" json:"-"`
	Description        string     `gorm:"size:255;not null;default:''" json:"description"`
	BikePhotoURL       string     `gorm:"size:500;not null" json:"bike_photo_url"`
	SafetyGearPhotoURL string     `gorm:"size:500;not null" json:"safety_gear_photo_url"`
	StartedAt          time.Time  `json:"started_at"`
	CreatedAt          time.Time  `json:"created_at"`
	VerificationStatus string     `gorm:"size:20;not null;default:'pending'" json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at"`
	PointsAwarded      int        `gorm:"not null;default:0" json:"points_awarded"`
	AdminNotes         *string    `gorm:"size:500" json:"admin_notes"`
}

func (BikeLog) TableName() string {
	return "bike_logs"
}

// BikeCount is the payload of GET /users/bike-logs/today/count.
type BikeCount struct {
	Count int `json:"count"`
}
