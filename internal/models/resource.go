package models

import (
	"time"
)

type Resource struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AuthorID       uint      `gorm:"not null;index" json:"author_id"`
	Author         User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID     *uint     `gorm:"index" json:"category_id"`
	Category       *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	FileURL        string    `gorm:"not null" json:"file_url"`
	FileType       string    `gorm:"size:50" json:"file_type"` // pdf, zip, video...
	FileSize       int64     `json:"file_size"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	PointsRequired int       `gorm:"default:0" json:"points_required"`
	IsPremium      bool      `gorm:"default:false" json:"is_premium"`
	IsPublished    bool      `gorm:"default:true" json:"is_published"`
	LikesCount     int       `gorm:"default:0" json:"likes_count"`
	ViewsCount     int       `gorm:"default:0" json:"views_count"`
	DownloadsCount int       `gorm:"default:0" json:"downloads_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	IsLiked     bool `gorm:"-" json:"is_liked"`
	IsFavorited bool `gorm:"-" json:"is_favorited"`
	IsPurchased bool `gorm:"-" json:"is_purchased"`
}
