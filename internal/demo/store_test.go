package demo

import (
	"testing"

	"likebike_backend/internal/model"
)

func TestSeedState(t *testing.T) {
	s := NewStore()

	profile := s.Profile()
	if profile.ID != 1 || profile.Username != "데모유저" {
		t.Errorf("seed profile = id %d username %q, want id 1 데모유저", profile.ID, profile.Username)
	}
	if profile.ExperiencePoints != 150 || profile.Points != 150 {
		t.Errorf("seed profile points = (%d, %d), want (150, 150)", profile.ExperiencePoints, profile.Points)
	}
	if profile.Level != 2 {
		t.Errorf("seed profile level = %d, want 2", profile.Level)
	}

	if got := len(s.Rewards()); got != 6 {
		t.Errorf("seed rewards = %d entries, want 6", got)
	}
	if got := len(s.Quizzes()); got != 5 {
		t.Errorf("seed quizzes = %d entries, want 5", got)
	}
	if got := len(s.BikeLogs()); got != 2 {
		t.Errorf("seed bike logs = %d entries, want 2", got)
	}

	courses := s.Courses()
	if len(courses) != 1 {
		t.Fatalf("seed courses = %d entries, want 1", len(courses))
	}
	if len(courses[0].Places) != 2 {
		t.Errorf("seed course places = %d, want 2", len(courses[0].Places))
	}

	if s.TodayBikeCount() != 0 || s.WeekCourseCount() != 0 {
		t.Errorf("seed counters = (%d, %d), want (0, 0)", s.TodayBikeCount(), s.WeekCourseCount())
	}

	status := s.QuizStatus()
	if status.Attempted || status.IsCorrect {
		t.Errorf("seed quiz status = %+v, want both false", status)
	}
}

func TestSeedBikeLogStates(t *testing.T) {
	s := NewStore()
	logs := s.BikeLogs()

	if logs[0].VerificationStatus != model.VerificationVerified || logs[0].PointsAwarded != 30 {
		t.Errorf("first seed log = %q/%d points, want verified/30", logs[0].VerificationStatus, logs[0].PointsAwarded)
	}
	if logs[1].VerificationStatus != model.VerificationPending || logs[1].PointsAwarded != 0 {
		t.Errorf("second seed log = %q/%d points, want pending/0", logs[1].VerificationStatus, logs[1].PointsAwarded)
	}
}

func TestAccessorsReturnSnapshots(t *testing.T) {
	s := NewStore()

	rewards := s.Rewards()
	rewards[0].ExperiencePoints = 9999

	if got := s.Rewards()[0].ExperiencePoints; got == 9999 {
		t.Error("mutating a returned reward slice leaked into the store")
	}
}
