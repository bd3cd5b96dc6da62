package service

import (
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo   *repository.UserRepository
	RewardRepo *repository.RewardRepository
	DB         *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, rewardRepo *repository.RewardRepository, db *gorm.DB) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		RewardRepo: rewardRepo,
		DB:         db,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) GetLevel(userID uint) (*model.LevelInfo, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &model.LevelInfo{
		Level:            user.Level,
		LevelName:        user.LevelName,
		ExperiencePoints: user.ExperiencePoints,
	}, nil
}

func (s *UserService) GetRewards(userID uint) ([]model.Reward, error) {
	return s.RewardRepo.ListByUser(userID)
}

// UpdateScore applies a manual experience delta: experience_points and
// points move together (floored at zero), the level band is recomputed from
// the new total, and an audit reward row is appended. All in one
// transaction.
func (s *UserService) UpdateScore(userID uint, points int, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.AddExperience(tx, userID, points); err != nil {
			return err
		}

		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		level, levelName := util.ComputeLevel(user.ExperiencePoints)
		if err := s.UserRepo.SetLevel(tx, userID, level, levelName); err != nil {
			return err
		}

		return s.RewardRepo.Create(tx, &model.Reward{
			UserID:           userID,
			ExperiencePoints: points,
			RewardReason:     reason,
			SourceType:       model.RewardSourceManual,
			CreatedAt:        time.Now(),
		})
	})
}
