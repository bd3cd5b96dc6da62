package repository

import (
	"time"

	"likebike_backend/internal/model"

	"gorm.io/gorm"
)

type BikeLogRepository struct {
	DB *gorm.DB
}

func NewBikeLogRepository(db *gorm.DB) *BikeLogRepository {
	return &BikeLogRepository{DB: db}
}

func (r *BikeLogRepository) Create(log *model.BikeLog) error {
	return r.DB.Create(log).Error
}

func (r *BikeLogRepository) ListByUser(userID uint) ([]model.BikeLog, error) {
	var logs []model.BikeLog
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&logs).Error
	return logs, err
}

// CountSince counts a user's submissions created at or after the given
// instant. Used for the daily submission counter.
func (r *BikeLogRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.BikeLog{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
