package service

import (
	"strings"
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/repository"
	"likebike_backend/internal/util"

	"gorm.io/gorm"
)

// QuizRewardPoints is awarded for each correct daily-quiz answer.
const QuizRewardPoints = 10

// QuizRewardReason is the audit reason recorded with quiz rewards.
const QuizRewardReason = "퀴즈 정답"

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	UserRepo   *repository.UserRepository
	RewardRepo *repository.RewardRepository
	DB         *gorm.DB
}

func NewQuizService(quizRepo *repository.QuizRepository, userRepo *repository.UserRepository, rewardRepo *repository.RewardRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		UserRepo:   userRepo,
		RewardRepo: rewardRepo,
		DB:         db,
	}
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.QuizRepo.List()
}

// NormalizeAnswer is the single equality rule for quiz answers: leading and
// trailing whitespace is ignored and comparison is case-insensitive.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Attempt scores an answer against the quiz. A correct answer awards
// QuizRewardPoints to experience and points, recomputes the level band and
// appends a reward row; a wrong answer only records the attempt. An unknown
// quiz id scores as incorrect.
func (s *QuizService) Attempt(userID, quizID uint, answer string) (*model.QuizAttemptResult, error) {
	isCorrect := false
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err == nil {
		isCorrect = NormalizeAnswer(answer) == NormalizeAnswer(quiz.CorrectAnswer)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	earned := 0
	if isCorrect {
		earned = QuizRewardPoints
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		attempt := &model.QuizAttempt{
			UserID:           userID,
			QuizID:           quizID,
			Answer:           strings.TrimSpace(answer),
			IsCorrect:        isCorrect,
			PointsEarned:     earned,
			ExperienceEarned: earned,
			CreatedAt:        time.Now(),
		}
		if err := s.QuizRepo.CreateAttempt(tx, attempt); err != nil {
			return err
		}

		if !isCorrect {
			return nil
		}

		if err := s.UserRepo.AddExperience(tx, userID, earned); err != nil {
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
			ExperiencePoints: earned,
			RewardReason:     QuizRewardReason,
			SourceType:       model.RewardSourceQuiz,
			CreatedAt:        time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &model.QuizAttemptResult{
		IsCorrect:        isCorrect,
		PointsEarned:     earned,
		ExperienceEarned: earned,
		RewardGiven:      isCorrect,
	}, nil
}

// TodayStatus reports whether the user already attempted today's quiz. A day
// without a scheduled quiz reads as not attempted.
func (s *QuizService) TodayStatus(userID uint) (*model.QuizStatus, error) {
	today := time.Now().Format("2006-01-02")

	quiz, err := s.QuizRepo.FindByDisplayDate(today)
	if err == gorm.ErrRecordNotFound {
		return &model.QuizStatus{}, nil
	} else if err != nil {
		return nil, err
	}

	attempt, err := s.QuizRepo.LatestAttempt(userID, quiz.ID)
	if err == gorm.ErrRecordNotFound {
		return &model.QuizStatus{}, nil
	} else if err != nil {
		return nil, err
	}

	return &model.QuizStatus{Attempted: true, IsCorrect: attempt.IsCorrect}, nil
}
