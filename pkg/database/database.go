package database

import (
	"fmt"
	"log"
	"time"

	"likebike_backend/internal/config"
	"likebike_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Reward{},
		&model.Quiz{},
		&model.QuizAttempt{},
		&model.BikeLog{},
		&model.Course{},
		&model.CoursePlace{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedQuizzes(db)

	return db, nil
}

// seedQuizzes inserts the safety quiz catalog once, one quiz per display
// date counting back from today.
func seedQuizzes(db *gorm.DB) {
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count > 0 {
		return
	}

	type seedQuiz struct {
		question    string
		answers     []string
		correct     string
		explanation string
		hint        string
		hintLink    string
		quizType    model.QuizType
		dayOffset   int
	}

	quizzes := []seedQuiz{
		{
			question:    "자전거 도로에서의 최고 속도 제한은?",
			answers:     []string{"시속 20km", "시속 30km", "시속 40km", "제한 없음"},
			correct:     "시속 20km",
			explanation: "도로교통법에 따르면 자전거도로에서의 최고 속도는 시속 20km입니다.",
			hint:        "도로교통법 제19조를 확인해보세요.",
			hintLink:    "https://www.law.go.kr",
			quizType:    model.QuizTypeSelect,
			dayOffset:   0,
		},
		{
			question:    "자전거 운전 시 안전모 착용은 의무이다.",
			answers:     []string{"O", "X"},
			correct:     "O",
			explanation: "도로교통법 제50조에 따라 자전거 운전 시 인명보호장구(안전모)를 착용해야 합니다.",
			hint:        "도로교통법 제50조를 확인해보세요.",
			quizType:    model.QuizTypeOX,
			dayOffset:   -1,
		},
		{
			question:    "야간에 자전거를 운행할 때 반드시 켜야 하는 것은?",
			answers:     []string{"전조등", "경적", "방향지시등", "비상등"},
			correct:     "전조등",
			explanation: "야간에 자전거를 운행할 때는 전조등과 미등을 반드시 켜야 합니다.",
			hint:        "야간 자전거 운행 규칙을 확인해보세요.",
			quizType:    model.QuizTypeSelect,
			dayOffset:   -2,
		},
		{
			question:    "자전거 횡단도의 신호는 (  ) 신호를 따른다.",
			answers:     []string{},
			correct:     "자전거",
			explanation: "자전거 횡단도에서는 자전거 신호등이 있는 경우 해당 신호를 따릅니다.",
			hint:        "횡단보도와 자전거 횡단도의 차이를 알아보세요.",
			quizType:    model.QuizTypeInput,
			dayOffset:   -3,
		},
		{
			question:    "자전거 음주운전 적발 시 범칙금은?",
			answers:     []string{"1만원", "3만원", "5만원", "10만원"},
			correct:     "3만원",
			explanation: "자전거 음주운전 적발 시 범칙금 3만원이 부과됩니다.",
			hint:        "자전거 음주운전 처벌 규정을 확인해보세요.",
			quizType:    model.QuizTypeSelect,
			dayOffset:   -4,
		},
		{
			question:    "자전거도 도로교통법상 '차'에 해당한다.",
			answers:     []string{"O", "X"},
			correct:     "O",
			explanation: "도로교통법 제2조에 따르면 자전거는 '차'에 해당합니다.",
			hint:        "도로교통법 제2조 정의를 확인해보세요.",
			quizType:    model.QuizTypeOX,
			dayOffset:   -5,
		},
		{
			question:    "자전거 운전 중 휴대전화 사용 시 범칙금은?",
			answers:     []string{"1만원", "2만원", "3만원", "5만원"},
			correct:     "2만원",
			explanation: "자전거 운전 중 휴대전화를 사용하면 범칙금 2만원이 부과됩니다.",
			hint:        "자전거 운전 중 휴대전화 사용 규정을 확인해보세요.",
			quizType:    model.QuizTypeSelect,
			dayOffset:   -6,
		},
	}

	today := time.Now()
	for _, q := range quizzes {
		displayDate := today.AddDate(0, 0, q.dayOffset).Format("2006-01-02")
		db.Create(&model.Quiz{
			Question:        q.question,
			Answers:         q.answers,
			CorrectAnswer:   q.correct,
			Explanation:     q.explanation,
			HintLink:        q.hintLink,
			HintDescription: q.hint,
			DisplayDate:     displayDate,
			QuizType:        q.quizType,
		})
	}

	log.Printf("Seeded %d quizzes", len(quizzes))
}
