package demo

import (
	"time"

	"likebike_backend/internal/model"
	"likebike_backend/internal/util"
)

const (
	demoUserID = 1

	bikePhotoSample   = "/images/mock/bike_sample.svg"
	safetyPhotoSample = "/images/mock/safety_sample.svg"
	coursePhotoSample = "/images/mock/course_sample.svg"
	placePhotoSample  = "/images/mock/place_sample.svg"
)

// seed initializes the store to its fixed demo state: one profile with 150
// experience points, a six-entry reward history, five quizzes covering the
// last five days, two bike logs and one course. Timestamps are relative to
// process start so the data always looks recent.
func (s *Store) seed() {
	now := time.Now()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	level, levelName := util.ComputeLevel(150)
	s.profile = model.User{
		ID:               demoUserID,
		KakaoID:          "demo_seed",
		Username:         "데모유저",
		Email:            "demo@likebike.kr",
		ExperiencePoints: 150,
		Points:           150,
		Level:            level,
		LevelName:        levelName,
		CreatedAt:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	s.rewards = []model.Reward{
		{ID: 1, UserID: demoUserID, ExperiencePoints: 10, RewardReason: "퀴즈 정답", SourceType: model.RewardSourceQuiz, CreatedAt: daysAgo(5)},
		{ID: 2, UserID: demoUserID, ExperiencePoints: 10, RewardReason: "해설 확인", SourceType: model.RewardSourceQuiz, CreatedAt: daysAgo(4)},
		{ID: 3, UserID: demoUserID, ExperiencePoints: 30, RewardReason: "자전거 인증 완료", SourceType: model.RewardSourceBikeLog, CreatedAt: daysAgo(3)},
		{ID: 4, UserID: demoUserID, ExperiencePoints: 50, RewardReason: "코스 추천 승인", SourceType: model.RewardSourceCourse, CreatedAt: daysAgo(2)},
		{ID: 5, UserID: demoUserID, ExperiencePoints: 10, RewardReason: "퀴즈 정답", SourceType: model.RewardSourceQuiz, CreatedAt: daysAgo(1)},
		{ID: 6, UserID: demoUserID, ExperiencePoints: 30, RewardReason: "자전거 인증 완료", SourceType: model.RewardSourceBikeLog, CreatedAt: now},
	}

	dateOf := func(n int) string { return daysAgo(n).Format("2006-01-02") }
	s.quizzes = []model.Quiz{
		{
			ID:              1,
			Question:        "자전거 도로에서의 최고 속도 제한은?",
			Answers:         []string{"시속 20km", "시속 30km", "시속 40km", "제한 없음"},
			CorrectAnswer:   "시속 20km",
			Explanation:     "도로교통법에 따르면 자전거도로에서의 최고 속도는 시속 20km입니다.",
			HintLink:        "https://www.law.go.kr",
			HintDescription: "도로교통법 제19조를 확인해보세요.",
			DisplayDate:     dateOf(0),
			QuizType:        model.QuizTypeSelect,
		},
		{
			ID:              2,
			Question:        "자전거 운전 시 안전모 착용은 의무이다.",
			Answers:         []string{"O", "X"},
			CorrectAnswer:   "O",
			Explanation:     "도로교통법 제50조에 따라 자전거 운전 시 인명보호장구(안전모)를 착용해야 합니다.",
			HintDescription: "도로교통법 제50조를 확인해보세요.",
			DisplayDate:     dateOf(1),
			QuizType:        model.QuizTypeOX,
		},
		{
			ID:              3,
			Question:        "야간에 자전거를 운행할 때 반드시 켜야 하는 것은?",
			Answers:         []string{"전조등", "경적", "방향지시등", "비상등"},
			CorrectAnswer:   "전조등",
			Explanation:     "야간에 자전거를 운행할 때는 전조등과 미등을 반드시 켜야 합니다.",
			HintDescription: "야간 자전거 운행 규칙을 확인해보세요.",
			DisplayDate:     dateOf(2),
			QuizType:        model.QuizTypeSelect,
		},
		{
			ID:              4,
			Question:        "자전거 횡단도의 신호는 (  ) 신호를 따른다.",
			Answers:         []string{},
			CorrectAnswer:   "자전거",
			Explanation:     "자전거 횡단도에서는 자전거 신호등이 있는 경우 해당 신호를 따릅니다.",
			HintDescription: "횡단보도와 자전거 횡단도의 차이를 알아보세요.",
			DisplayDate:     dateOf(3),
			QuizType:        model.QuizTypeInput,
		},
		{
			ID:              5,
			Question:        "자전거 음주운전 적발 시 범칙금은?",
			Answers:         []string{"1만원", "3만원", "5만원", "10만원"},
			CorrectAnswer:   "3만원",
			Explanation:     "자전거 음주운전 적발 시 범칙금 3만원이 부과됩니다.",
			HintDescription: "자전거 음주운전 처벌 규정을 확인해보세요.",
			DisplayDate:     dateOf(4),
			QuizType:        model.QuizTypeSelect,
		},
	}

	verifiedAt := daysAgo(2)
	s.bikeLogs = []model.BikeLog{
		{
			ID:                 1,
			UserID:             demoUserID,
			Description:        "자전거 타기 인증",
			BikePhotoURL:       bikePhotoSample,
			SafetyGearPhotoURL: safetyPhotoSample,
			StartedAt:          daysAgo(3),
			CreatedAt:          daysAgo(3),
			VerificationStatus: model.VerificationVerified,
			VerifiedAt:         &verifiedAt,
			PointsAwarded:      30,
		},
		{
			ID:                 2,
			UserID:             demoUserID,
			Description:        "자전거 타기 인증",
			BikePhotoURL:       bikePhotoSample,
			SafetyGearPhotoURL: safetyPhotoSample,
			StartedAt:          daysAgo(1),
			CreatedAt:          daysAgo(1),
			VerificationStatus: model.VerificationPending,
			PointsAwarded:      0,
		},
	}

	s.courses = []model.Course{
		{
			ID:                1,
			UserID:            demoUserID,
			Title:             "한강 자전거길 코스",
			CourseName:        "여의도-반포 한강 코스",
			CourseDescription: "여의도에서 반포까지 한강을 따라 달리는 멋진 코스입니다.",
			Description:       "여의도에서 반포까지 한강을 따라 달리는 멋진 코스입니다.",
			PhotoURL:          coursePhotoSample,
			Places: []model.CoursePlace{
				{
					ID:            1,
					CourseID:      1,
					Name:          "여의도한강공원",
					AddressName:   "서울 영등포구 여의동로 330",
					Description:   "출발지점 - 여의도한강공원 자전거 대여소",
					PhotoURL:      placePhotoSample,
					Latitude:      37.5284,
					Longitude:     126.9326,
					X:             "126.9326",
					Y:             "37.5284",
					SequenceOrder: 0,
				},
				{
					ID:            2,
					CourseID:      1,
					Name:          "반포한강공원",
					AddressName:   "서울 서초구 신반포로11길 40",
					Description:   "도착지점 - 반포한강공원 달빛무지개분수 근처",
					PhotoURL:      placePhotoSample,
					Latitude:      37.5097,
					Longitude:     126.9951,
					X:             "126.9951",
					Y:             "37.5097",
					SequenceOrder: 1,
				},
			},
			Status:        model.VerificationPending,
			PointsAwarded: 0,
			CreatedAt:     daysAgo(2),
		},
	}

	s.bikeLogID = 2
	s.courseID = 1
	s.rewardID = 6
	s.placeID = 2

	s.todayBikeCount = 0
	s.weekCourseCount = 0
	s.quizAttempted = false
	s.quizCorrect = false
}

// demoNews is the static news feed served in demo mode; items are pinned to
// recent relative dates like the rest of the seed.
func demoNews() []model.NewsItem {
	iso := func(n int) *string {
		s := time.Now().AddDate(0, 0, -n).Format(time.RFC3339)
		return &s
	}
	return []model.NewsItem{
		{ID: "news-1", Title: "서울시 자전거 도로 확충 계획 발표", URL: "#", CreatedTime: iso(1)},
		{ID: "news-2", Title: "한강 자전거길 야간 조명 개선 완료", URL: "#", CreatedTime: iso(3)},
		{ID: "news-3", Title: "봄철 자전거 안전 수칙 안내", URL: "#", CreatedTime: iso(5)},
	}
}
