package demo

import (
	"strconv"
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/service"
	"likebike_backend/internal/util"
)

// AddBikeLog creates a pending bike log with the sample photos, bumps the
// daily submission counter and prepends the log to the list.
func (s *Store) AddBikeLog() model.BikeLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bikeLogID++
	s.todayBikeCount++

	now := time.Now()
	log := model.BikeLog{
		ID:                 s.bikeLogID,
		UserID:             demoUserID,
		Description:        service.DefaultBikeLogDescription,
		BikePhotoURL:       bikePhotoSample,
		SafetyGearPhotoURL: safetyPhotoSample,
		StartedAt:          now,
		CreatedAt:          now,
		VerificationStatus: model.VerificationPending,
		PointsAwarded:      0,
	}
	s.bikeLogs = append([]model.BikeLog{log}, s.bikeLogs...)
	return log
}

// AddCourse creates a pending course from the submitted place sequence,
// bumps the weekly submission counter and prepends the course to the list.
// course_name and course_description come from the first place; an empty
// sequence yields the placeholder name and an empty description. Place
// completeness is the caller's concern and is not validated here.
func (s *Store) AddCourse(places []model.PlaceInput) model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courseID++
	s.weekCourseCount++

	name := "새 코스"
	description := ""
	if len(places) > 0 {
		if places[0].Name != "" {
			name = places[0].Name
		}
		description = places[0].Description
	}

	coursePlaces := make([]model.CoursePlace, 0, len(places))
	for idx, place := range places {
		s.placeID++
		lat, lng := parseCoordinate(place.Y), parseCoordinate(place.X)
		coursePlaces = append(coursePlaces, model.CoursePlace{
			ID:            s.placeID,
			CourseID:      s.courseID,
			Name:          place.Name,
			AddressName:   place.AddressName,
			Description:   place.Description,
			PhotoURL:      placePhotoSample,
			Latitude:      lat,
			Longitude:     lng,
			X:             place.X,
			Y:             place.Y,
			SequenceOrder: idx,
		})
	}

	course := model.Course{
		ID:                s.courseID,
		UserID:            demoUserID,
		CourseName:        name,
		CourseDescription: description,
		Description:       description,
		PhotoURL:          coursePhotoSample,
		Places:            coursePlaces,
		Status:            model.VerificationPending,
		PointsAwarded:     0,
		CreatedAt:         time.Now(),
	}
	s.courses = append([]model.Course{course}, s.courses...)
	return course
}

// AttemptQuiz scores an answer against the quiz and flips the daily attempt
// flags. Answers are compared trimmed and lowercased; an unknown quiz id
// scores as incorrect. A correct answer appends a reward and adds 10 to
// experience_points and points in lockstep. The level band is left to the
// score update path.
func (s *Store) AttemptQuiz(quizID uint, answer string) model.QuizAttemptResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	isCorrect := false
	if quiz := s.findQuiz(quizID); quiz != nil {
		isCorrect = service.NormalizeAnswer(answer) == service.NormalizeAnswer(quiz.CorrectAnswer)
	}

	s.quizAttempted = true
	s.quizCorrect = isCorrect

	earned := 0
	if isCorrect {
		earned = service.QuizRewardPoints
		s.rewardID++
		s.rewards = append(s.rewards, model.Reward{
			ID:               s.rewardID,
			UserID:           demoUserID,
			ExperiencePoints: earned,
			RewardReason:     service.QuizRewardReason,
			SourceType:       model.RewardSourceQuiz,
			CreatedAt:        time.Now(),
		})
		s.profile.ExperiencePoints += earned
		s.profile.Points += earned
	}

	return model.QuizAttemptResult{
		IsCorrect:        isCorrect,
		PointsEarned:     earned,
		ExperienceEarned: earned,
		RewardGiven:      isCorrect,
	}
}

// UpdateScore adds points to experience_points and points in lockstep,
// records a manual reward with the raw delta and recomputes the level band.
// Negative deltas are accepted; the running totals are floored at zero.
func (s *Store) UpdateScore(points int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.profile.ExperiencePoints + points
	if total < 0 {
		total = 0
	}
	s.profile.ExperiencePoints = total
	s.profile.Points = total

	s.rewardID++
	s.rewards = append(s.rewards, model.Reward{
		ID:               s.rewardID,
		UserID:           demoUserID,
		ExperiencePoints: points,
		RewardReason:     reason,
		SourceType:       model.RewardSourceManual,
		CreatedAt:        time.Now(),
	})

	s.profile.Level, s.profile.LevelName = util.ComputeLevel(total)
}

// ResetDaily clears the daily bike counter and the quiz attempt flags. The
// weekly course counter is untouched; ResetWeekly owns it.
func (s *Store) ResetDaily() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todayBikeCount = 0
	s.quizAttempted = false
	s.quizCorrect = false
}

// ResetWeekly clears the weekly course submission counter.
func (s *Store) ResetWeekly() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekCourseCount = 0
}

func parseCoordinate(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
