package models

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64     `json:"user_id" gorm:"not null;index"`
	Isbn       string    `json:"isbn" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	Score      int       `json:"score" gorm:"not null;check:score >= 0 AND score <= 10"`
	LikesCount int       `json:"likes_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
