package repository

import (
	"likebike_backend/internal/model"

	"gorm.io/gorm"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

// Create appends one reward row. Rewards are append-only; there is no update
// or delete path.
func (r *RewardRepository) Create(tx *gorm.DB, reward *model.Reward) error {
	return tx.Create(reward).Error
}

func (r *RewardRepository) ListByUser(userID uint) ([]model.Reward, error) {
	var rewards []model.Reward
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&rewards).Error
	return rewards, err
}
