package demo

import (
	"testing"

	"likebike_backend/internal/model"
	"likebike_backend/internal/util"
)

func TestAddBikeLog(t *testing.T) {
	s := NewStore()

	log := s.AddBikeLog()

	if log.ID != 3 {
		t.Errorf("new log id = %d, want 3 (seed holds 2)", log.ID)
	}
	if log.VerificationStatus != model.VerificationPending {
		t.Errorf("new log status = %q, want pending", log.VerificationStatus)
	}
	if log.PointsAwarded != 0 {
		t.Errorf("new log points = %d, want 0", log.PointsAwarded)
	}
	if s.TodayBikeCount() != 1 {
		t.Errorf("todayBikeCount = %d, want 1", s.TodayBikeCount())
	}
	if head := s.BikeLogs()[0]; head.ID != log.ID {
		t.Errorf("list head id = %d, want new log %d", head.ID, log.ID)
	}
}

func TestBikeLogIDsMonotonic(t *testing.T) {
	s := NewStore()

	prev := uint(0)
	for i := 0; i < 5; i++ {
		log := s.AddBikeLog()
		if log.ID <= prev {
			t.Fatalf("ids not strictly increasing: %d after %d", log.ID, prev)
		}
		if prev != 0 && log.ID != prev+1 {
			t.Fatalf("id gap: %d after %d", log.ID, prev)
		}
		prev = log.ID
	}
}

func TestAddCourseThreadsPlaces(t *testing.T) {
	s := NewStore()

	course := s.AddCourse([]model.PlaceInput{
		{Name: "뚝섬한강공원", AddressName: "서울 광진구", Description: "출발지", X: "127.0689", Y: "37.5304"},
		{Name: "잠실한강공원", AddressName: "서울 송파구", Description: "도착지", X: "127.0823", Y: "37.5202"},
	})

	if course.ID != 2 {
		t.Errorf("new course id = %d, want 2", course.ID)
	}
	if course.CourseName != "뚝섬한강공원" || course.CourseDescription != "출발지" {
		t.Errorf("course derived fields = (%q, %q), want from first place", course.CourseName, course.CourseDescription)
	}
	if len(course.Places) != 2 {
		t.Fatalf("course places = %d, want 2", len(course.Places))
	}
	if course.Places[0].SequenceOrder != 0 || course.Places[1].SequenceOrder != 1 {
		t.Error("sequence order does not follow submission order")
	}
	if course.Places[0].Longitude != 127.0689 || course.Places[0].Latitude != 37.5304 {
		t.Errorf("coordinates = (%v, %v), want parsed from x/y", course.Places[0].Longitude, course.Places[0].Latitude)
	}
	if s.WeekCourseCount() != 1 {
		t.Errorf("weekCourseCount = %d, want 1", s.WeekCourseCount())
	}
}

func TestAddCourseEmptyPlaces(t *testing.T) {
	s := NewStore()

	course := s.AddCourse(nil)
	if course.CourseName != "새 코스" {
		t.Errorf("placeholder course name = %q, want 새 코스", course.CourseName)
	}
	if course.Status != model.VerificationPending {
		t.Errorf("course status = %q, want pending", course.Status)
	}
}

func TestAttemptQuizCorrect(t *testing.T) {
	s := NewStore()
	before := s.Profile()
	rewardsBefore := len(s.Rewards())

	// Quiz 2 is the OX quiz with correct answer "O".
	result := s.AttemptQuiz(2, "o")

	if !result.IsCorrect || result.PointsEarned != 10 || result.ExperienceEarned != 10 {
		t.Errorf("result = %+v, want correct with 10 points", result)
	}
	if !result.RewardGiven {
		t.Error("reward_given = false, want true on correct answer")
	}

	after := s.Profile()
	if after.ExperiencePoints != before.ExperiencePoints+10 {
		t.Errorf("experience = %d, want %d", after.ExperiencePoints, before.ExperiencePoints+10)
	}
	if after.Points != after.ExperiencePoints {
		t.Errorf("points %d != experience %d, lockstep broken", after.Points, after.ExperiencePoints)
	}

	rewards := s.Rewards()
	if len(rewards) != rewardsBefore+1 {
		t.Fatalf("rewards = %d entries, want %d", len(rewards), rewardsBefore+1)
	}
	last := rewards[len(rewards)-1]
	if last.ExperiencePoints != 10 || last.SourceType != model.RewardSourceQuiz || last.RewardReason != "퀴즈 정답" {
		t.Errorf("appended reward = %+v, want 10 points quiz 퀴즈 정답", last)
	}

	status := s.QuizStatus()
	if !status.Attempted || !status.IsCorrect {
		t.Errorf("quiz status = %+v, want attempted and correct", status)
	}
}

func TestAttemptQuizIncorrect(t *testing.T) {
	s := NewStore()
	before := s.Profile()
	rewardsBefore := len(s.Rewards())

	result := s.AttemptQuiz(2, "X")

	if result.IsCorrect || result.PointsEarned != 0 || result.ExperienceEarned != 0 || result.RewardGiven {
		t.Errorf("result = %+v, want incorrect with nothing earned", result)
	}
	if after := s.Profile(); after.ExperiencePoints != before.ExperiencePoints {
		t.Errorf("experience changed on wrong answer: %d -> %d", before.ExperiencePoints, after.ExperiencePoints)
	}
	if len(s.Rewards()) != rewardsBefore {
		t.Error("reward appended on wrong answer")
	}

	status := s.QuizStatus()
	if !status.Attempted || status.IsCorrect {
		t.Errorf("quiz status = %+v, want attempted but not correct", status)
	}
}

func TestAttemptQuizNormalizesAnswer(t *testing.T) {
	s := NewStore()

	// Quiz 4 is the fill-in quiz with correct answer "자전거".
	if result := s.AttemptQuiz(4, " 자전거 "); !result.IsCorrect {
		t.Error("whitespace-padded answer scored incorrect")
	}
}

func TestAttemptQuizUnknownID(t *testing.T) {
	s := NewStore()

	result := s.AttemptQuiz(999, "anything")
	if result.IsCorrect || result.RewardGiven {
		t.Errorf("unknown quiz result = %+v, want incorrect", result)
	}
	if status := s.QuizStatus(); !status.Attempted {
		t.Error("unknown quiz attempt did not set attempted flag")
	}
}

func TestUpdateScoreCrossesLevelBoundary(t *testing.T) {
	s := NewStore()

	// 150 seed + 140 = 290, one band below intermediate.
	s.UpdateScore(140, "보너스")
	if p := s.Profile(); p.ExperiencePoints != 290 || p.Level != 3 {
		t.Fatalf("profile = %d xp level %d, want 290 xp level 3", p.ExperiencePoints, p.Level)
	}

	s.UpdateScore(10, "보너스")
	p := s.Profile()
	if p.ExperiencePoints != 300 {
		t.Errorf("experience = %d, want 300", p.ExperiencePoints)
	}
	if p.Level != 4 || p.LevelName != util.LevelNameIntermediate {
		t.Errorf("level = (%d, %q), want (4, 중급자)", p.Level, p.LevelName)
	}
	if p.Points != p.ExperiencePoints {
		t.Errorf("points %d != experience %d", p.Points, p.ExperiencePoints)
	}
}

func TestUpdateScoreRecordsRawDelta(t *testing.T) {
	s := NewStore()

	s.UpdateScore(-30, "패널티")

	p := s.Profile()
	if p.ExperiencePoints != 120 {
		t.Errorf("experience = %d, want 120", p.ExperiencePoints)
	}

	rewards := s.Rewards()
	last := rewards[len(rewards)-1]
	if last.ExperiencePoints != -30 || last.SourceType != model.RewardSourceManual {
		t.Errorf("reward = %+v, want raw -30 manual", last)
	}
}

func TestUpdateScoreFloorsAtZero(t *testing.T) {
	s := NewStore()

	s.UpdateScore(-500, "reset")
	p := s.Profile()
	if p.ExperiencePoints != 0 || p.Points != 0 {
		t.Errorf("totals = (%d, %d), want floored at zero", p.ExperiencePoints, p.Points)
	}
	if p.Level != 1 || p.LevelName != util.LevelNameInterested {
		t.Errorf("level = (%d, %q), want (1, 관심인)", p.Level, p.LevelName)
	}
}

func TestResetDaily(t *testing.T) {
	s := NewStore()
	s.AddBikeLog()
	s.AttemptQuiz(2, "O")

	s.ResetDaily()

	if s.TodayBikeCount() != 0 {
		t.Errorf("todayBikeCount = %d after reset, want 0", s.TodayBikeCount())
	}
	if status := s.QuizStatus(); status.Attempted || status.IsCorrect {
		t.Errorf("quiz status = %+v after reset, want cleared", status)
	}
}

func TestResetDailyLeavesWeeklyCounter(t *testing.T) {
	s := NewStore()
	s.AddCourse(nil)

	s.ResetDaily()
	if s.WeekCourseCount() != 1 {
		t.Errorf("weekCourseCount = %d after daily reset, want 1", s.WeekCourseCount())
	}

	s.ResetWeekly()
	if s.WeekCourseCount() != 0 {
		t.Errorf("weekCourseCount = %d after weekly reset, want 0", s.WeekCourseCount())
	}
}

func TestRewardsAppendOnly(t *testing.T) {
	s := NewStore()
	before := s.Rewards()

	s.AttemptQuiz(2, "O")
	s.UpdateScore(5, "수동")

	after := s.Rewards()
	if len(after) != len(before)+2 {
		t.Fatalf("rewards = %d entries, want %d", len(after), len(before)+2)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("existing reward %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}
