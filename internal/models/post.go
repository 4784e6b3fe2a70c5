package models

import (
	"time"
)

type Post struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AuthorID       uint      `gorm:"not null;index" json:"author_id"`
	Author         User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID     *uint     `gorm:"index" json:"category_id"`
	Category       *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	Title          string    `gorm:"not null" json:"title"`
	Content        string    `gorm:"type:text" json:"content"`
	PointsRequired int       `gorm:"default:0" json:"points_required"` // 解锁所需松果，0 为免费
	IsPremium      bool      `gorm:"default:false" json:"is_premium"`
	IsPublished    bool      `gorm:"default:true" json:"is_published"`
	LikesCount     int       `gorm:"default:0" json:"likes_count"` // 冗余计数，与 likes 表保持一致
	ViewsCount     int       `gorm:"default:0" json:"views_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	ContentHTML  string `gorm:"-" json:"content_html,omitempty"`
	CommentCount int64  `gorm:"-" json:"comment_count"`
	IsLiked      bool   `gorm:"-" json:"is_liked"`
	IsFavorited  bool   `gorm:"-" json:"is_favorited"`
	IsPurchased  bool   `gorm:"-" json:"is_purchased"`
}
