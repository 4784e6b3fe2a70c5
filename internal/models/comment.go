package models

import (
	"time"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Post       Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikesCount int       `gorm:"default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`

	IsLiked bool `gorm:"-" json:"is_liked"`
}
