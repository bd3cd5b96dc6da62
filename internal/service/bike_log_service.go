package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/util"

	"github.com/google/uuid"
)

// DefaultBikeLogDescription is used when the submission carries none.
const DefaultBikeLogDescription = "자전거 타기 인증"

type BikeLogService struct {
	BikeLogRepo *repository.BikeLogRepository
	Storage     *StorageService
}

func NewBikeLogService(bikeLogRepo *repository.BikeLogRepository, storage *StorageService) *BikeLogService {
	return &BikeLogService{
		BikeLogRepo: bikeLogRepo,
		Storage:     storage,
	}
}

func (s *BikeLogService) List(userID uint) ([]model.BikeLog, error) {
	return s.BikeLogRepo.ListByUser(userID)
}

// Submit stores the two required photos and creates the log in pending
// state with zero points; verification is an admin concern and never happens
// here.
func (s *BikeLogService) Submit(ctx context.Context, userID uint, description string, bikePhoto, safetyPhoto *multipart.FileHeader) (*model.BikeLog, error) {
	if bikePhoto == nil || safetyPhoto == nil {
		return nil, util.ErrPhotoRequired
	}
	if description == "" {
		description = DefaultBikeLogDescription
	}

	bikeURL, err := s.savePhoto(ctx, "bike", bikePhoto)
	if err != nil {
		return nil, err
	}
	safetyURL, err := s.savePhoto(ctx, "safety", safetyPhoto)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	log := &model.BikeLog{
		UserID:             userID,
		Description:        description,
		BikePhotoURL:       bikeURL,
		SafetyGearPhotoURL: safetyURL,
		StartedAt:          now,
		CreatedAt:          now,
		VerificationStatus: model.VerificationPending,
		PointsAwarded:      0,
	}
	if err := s.BikeLogRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// TodayCount counts submissions since local midnight.
func (s *BikeLogService) TodayCount(userID uint) (*model.BikeCount, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.BikeLogRepo.CountSince(userID, startOfDay)
	if err != nil {
		return nil, err
	}
	return &model.BikeCount{Count: int(count)}, nil
}

func (s *BikeLogService) savePhoto(ctx context.Context, prefix string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := fmt.Sprintf("%s_%s.jpg", prefix, uuid.New().String())
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return s.Storage.Upload(ctx, filename, file, header.Size, contentType)
}
