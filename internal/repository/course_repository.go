package repository

import (
	"time"

	"likebike_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// Create inserts the course and its places in one transaction; GORM assigns
// CourseID to the associated places.
func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) ListByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("user_id = ?", userID).
		Preload("Places", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_places.sequence_order")
		}).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

// CountSince counts a user's submissions created at or after the given
// instant. Used for the weekly submission counter.
func (r *CourseRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
