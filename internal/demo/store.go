// Package demo is the offline simulation of the LikeBike backend. It keeps
// the whole API state of a single demo user in memory and answers every API
// route from it, so the app runs end to end with no database, storage or
// Kakao account.
//
// The store is explicit state, constructed per process (or per test) and
// passed by reference; there are no package-level globals.
package demo

import (
	"sync"

	"likebike_backend/internal/model"
)

// Store holds the canonical in-memory state: the demo profile, the reward
// ledger, the quiz catalog, bike logs, courses, the submission rate counters
// and the daily quiz-attempt flags.
//
// Id counters are monotonically increasing and never reused. The mutex is
// needed because HTTP handlers and the cron resets share the store; each
// mutation runs to completion under it, so updates stay atomic and in-order.
type Store struct {
	mu sync.Mutex

	profile  model.User
	rewards  []model.Reward
	quizzes  []model.Quiz
	bikeLogs []model.BikeLog
	courses  []model.Course

	bikeLogID uint
	courseID  uint
	rewardID  uint
	placeID   uint

	todayBikeCount  int
	weekCourseCount int
	quizAttempted   bool
	quizCorrect     bool
}

// NewStore returns a store populated with the demo seed state.
func NewStore() *Store {
	s := &Store{}
	s.seed()
	return s
}

// Profile returns a snapshot of the demo profile.
func (s *Store) Profile() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Level returns the profile's current level info.
func (s *Store) Level() model.LevelInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.LevelInfo{
		Level:            s.profile.Level,
		LevelName:        s.profile.LevelName,
		ExperiencePoints: s.profile.ExperiencePoints,
	}
}

// Rewards returns the reward ledger in insertion order.
func (s *Store) Rewards() []model.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reward, len(s.rewards))
	copy(out, s.rewards)
	return out
}

// Quizzes returns the static quiz catalog.
func (s *Store) Quizzes() []model.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Quiz, len(s.quizzes))
	copy(out, s.quizzes)
	return out
}

// BikeLogs returns the bike log list, newest submissions first.
func (s *Store) BikeLogs() []model.BikeLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BikeLog, len(s.bikeLogs))
	copy(out, s.bikeLogs)
	return out
}

// Courses returns the course list, newest submissions first.
func (s *Store) Courses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// TodayBikeCount reports bike log submissions since the last daily reset.
func (s *Store) TodayBikeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayBikeCount
}

// WeekCourseCount reports course submissions since the last weekly reset.
func (s *Store) WeekCourseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekCourseCount
}

// QuizStatus reports whether today's quiz was attempted and answered
// correctly.
func (s *Store) QuizStatus() model.QuizStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.QuizStatus{Attempted: s.quizAttempted, IsCorrect: s.quizCorrect}
}

func (s *Store) findQuiz(id uint) *model.Quiz {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			return &s.quizzes[i]
		}
	}
	return nil
}
