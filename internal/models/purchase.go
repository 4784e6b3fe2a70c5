package models

import (
	"time"
)

// Purchase 内容解锁记录，一个用户对同一内容只会购买一次。
type Purchase struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_purchase_post;uniqueIndex:idx_purchase_resource" json:"user_id"`
	PostID      *uint     `gorm:"uniqueIndex:idx_purchase_post" json:"post_id,omitempty"`
	ResourceID  *uint     `gorm:"uniqueIndex:idx_purchase_resource" json:"resource_id,omitempty"`
	PointsSpent int       `gorm:"not null" json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}
