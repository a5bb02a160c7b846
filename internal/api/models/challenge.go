package models

import "time"

const challengeMaxProgress = 100

type Challenge struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Deadline    time.Time `json:"deadline" gorm:"type:date"`
	Progress    int       `json:"progress" gorm:"not null;default:0;check:progress >= 0 AND progress <= 100"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// SetProgress clamps progress into [0, 100] and derives the completed flag.
// Completed is never set directly.
func (c *Challenge) SetProgress(progress int) {
	if progress < 0 {
		progress = 0
	}
	if progress > challengeMaxProgress {
		progress = challengeMaxProgress
	}
	c.Progress = progress
	c.Completed = progress >= challengeMaxProgress
}
