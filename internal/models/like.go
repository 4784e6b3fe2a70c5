package models

import (
	"time"
)

// Like 点赞记录。PostID / ResourceID / CommentID 三者有且仅有一个非空，
// 每个 (user, target) 组合由对应的联合唯一索引保证最多一条记录。
type Like struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_like_post;uniqueIndex:idx_like_resource;uniqueIndex:idx_like_comment" json:"user_id"`
	PostID     *uint     `gorm:"uniqueIndex:idx_like_post" json:"post_id,omitempty"`
	ResourceID *uint     `gorm:"uniqueIndex:idx_like_resource" json:"resource_id,omitempty"`
	CommentID  *uint     `gorm:"uniqueIndex:idx_like_comment" json:"comment_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PG 对唯一索引中的 NULL 视为互不相等，因此同一用户对不同类型目标的
// 点赞记录不会在其它类型的索引上冲突。
