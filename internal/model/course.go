package model

import "time"

// Course is a user-recommended route of ordered places, pending admin review.
// course_name and course_description are derived from the first place at
// submission time.
type Course struct {
	ID                uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint          `gorm:"index;not null" json:"user_id"`
	Title             string        `gorm:"size:255;not null;default:''" json:"title"`
	CourseName        string        `gorm:"size:255;not null;default:''" json:"course_name"`
	CourseDescription string        `gorm:"size:1000;not null;default:''" json:"course_description"`
	Description       string        `gorm:"size:1000;not null;default:''" json:"description"`
	PhotoURL          string        `gorm:"size:500;not null;default:''" json:"photo_url"`
	Places            []CoursePlace `gorm:"foreignKey:CourseID" json:"places"`
	Status            string        `gorm:"size:20;not null;default:'pending'" json:"status"`
	Review            string        `gorm:"size:1000;not null;default:''" json:"review"`
	ReviewedAt        *time.Time    `json:"reviewed_at"`
	ReviewedByAdminID *uint         `json:"reviewed_by_admin_id"`
	AdminNotes        *string       `gorm:"size:500" json:"admin_notes"`
	PointsAwarded     int           `gorm:"not null;default:0" json:"points_awarded"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (Course) TableName() string {
	return "course_recommendations"
}

// CoursePlace is one stop of a course; sequence_order is the position within
// the submitted route, starting at 0.
type CoursePlace struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"place_id"`
	CourseID      uint    `gorm:"index;not null" json:"-"`
	Name          string  `gorm:"size:255;not null;default:''" json:"name"`
	AddressName   string  `gorm:"size:255;not null;default:''" json:"address_name"`
	Description   string  `gorm:"size:1000;not null;default:''" json:"description"`
	PhotoURL      string  `gorm:"size:500;not null;default:''" json:"photo_url"`
	Latitude      float64 `gorm:"not null;default:0" json:"latitude"`
	Longitude     float64 `gorm:"not null;default:0" json:"longitude"`
	X             string  `gorm:"size:50;not null;default:''" json:"x"`
	Y             string  `gorm:"size:50;not null;default:''" json:"y"`
	SequenceOrder int     `gorm:"not null;default:0" json:"sequence_order"`
}

func (CoursePlace) TableName() string {
	return "course_places"
}

// CourseCount is the payload of GET /users/course-recommendations/week/count.
type CourseCount struct {
	Count int `json:"count"`
}

// PlaceInput is the submitted form of one course place. x/y are the Kakao map
// coordinates (x = longitude, y = latitude) as strings, matching the map SDK.
type PlaceInput struct {
	Name        string `json:"name"`
	AddressName string `json:"address_name"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	X           string `json:"x"`
	Y           string `json:"y"`
}
