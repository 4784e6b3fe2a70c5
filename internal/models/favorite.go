package models

import (
	"time"
)

// Favorite 收藏记录，帖子和资源共用一张表。
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_fav_post;uniqueIndex:idx_fav_resource" json:"user_id"`
	PostID     *uint     `gorm:"uniqueIndex:idx_fav_post" json:"post_id,omitempty"`
	ResourceID *uint     `gorm:"uniqueIndex:idx_fav_resource" json:"resource_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
