package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/util"

	"github.com/google/uuid"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, storage *StorageService) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Storage:    storage,
	}
}

func (s *CourseService) List(userID uint) ([]model.Course, error) {
	return s.CourseRepo.ListByUser(userID)
}

// Submit creates a pending course from the submitted place sequence.
// course_name and course_description come from the first place; x/y are the
// Kakao map coordinates and are parsed into longitude/latitude. photos maps
// a place's photo field name (e.g. "place_photo_0") to its uploaded file;
// mainPhoto may be nil.
func (s *CourseService) Submit(ctx context.Context, userID uint, places []model.PlaceInput, mainPhoto *multipart.FileHeader, photos map[string]*multipart.FileHeader) (*model.Course, error) {
	if len(places) == 0 {
		return nil, util.ErrPlacesRequired
	}

	mainPhotoURL := ""
	if mainPhoto != nil {
		url, err := s.savePhoto(ctx, "course", mainPhoto)
		if err != nil {
			return nil, err
		}
		mainPhotoURL = url
	}

	coursePlaces := make([]model.CoursePlace, 0, len(places))
	for idx, place := range places {
		photoURL := ""
		if place.Photo != "" {
			if header, ok := photos[place.Photo]; ok {
				url, err := s.savePhoto(ctx, "place", header)
				if err != nil {
					return nil, err
				}
				photoURL = url
			}
		}

		lat, _ := strconv.ParseFloat(place.Y, 64)
		lng, _ := strconv.ParseFloat(place.X, 64)

		coursePlaces = append(coursePlaces, model.CoursePlace{
			Name:          place.Name,
			AddressName:   place.AddressName,
			Description:   place.Description,
			PhotoURL:      photoURL,
			Latitude:      lat,
			Longitude:     lng,
			X:             place.X,
			Y:             place.Y,
			SequenceOrder: idx,
		})
	}

	course := &model.Course{
		UserID:            userID,
		CourseName:        places[0].Name,
		CourseDescription: places[0].Description,
		Description:       places[0].Description,
		PhotoURL:          mainPhotoURL,
		Places:            coursePlaces,
		Status:            model.VerificationPending,
		PointsAwarded:     0,
		CreatedAt:         time.Now(),
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// WeekCount counts submissions since Monday local midnight.
func (s *CourseService) WeekCount(userID uint) (*model.CourseCount, error) {
	now := time.Now()
	weekday := int(now.Weekday()+6) % 7 // days since Monday
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -weekday)

	count, err := s.CourseRepo.CountSince(userID, startOfWeek)
	if err != nil {
		return nil, err
	}
	return &model.CourseCount{Count: int(count)}, nil
}

func (s *CourseService) savePhoto(ctx context.Context, prefix string, header *multipart.FileHeader) (string, error) {
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
