package models

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Nickname  string    `json:"nickname" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;not null"`
	Birth     time.Time `json:"birth" gorm:"type:date"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
