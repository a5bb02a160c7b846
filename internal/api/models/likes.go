package models

import "time"

// Likes is the join row between a user and a review. Exactly one row exists
// per (user, review) pair; toggling flips Liked and moves the review's
// counter in the same transaction.
type Likes struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Liked     bool      `json:"liked" gorm:"not null;default:false"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_review"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:idx_user_review"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Review Review `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Likes) TableName() string {
	return "likes"
}
