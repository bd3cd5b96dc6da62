package repository

import (
	"likebike_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByKakaoID(kakaoID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("kakao_id = ?", kakaoID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// AddExperience adds delta to both experience_points and points in one
// statement, keeping the two columns in lockstep.
func (r *UserRepository) AddExperience(tx *gorm.DB, userID uint, delta int) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"experience_points": gorm.Expr("GREATEST(experience_points + ?, 0)", delta),
			"points":            gorm.Expr("GREATEST(points + ?, 0)", delta),
		}).
		Error
}

func (r *UserRepository) SetLevel(tx *gorm.DB, userID uint, level int, levelName string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"level":      level,
			"level_name": levelName,
		}).
		Error
}
