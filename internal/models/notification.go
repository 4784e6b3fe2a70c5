package models

import (
	"time"
)

const (
	NotificationTypeLike     = "like"
	NotificationTypePurchase = "purchase"
	NotificationTypeComment  = "comment"
	NotificationTypeSystem   = "system"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // 接收者
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ActorID   *uint     `json:"actor_id,omitempty"` // 触发者，系统消息为空
	Actor     *User     `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"actor,omitempty"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Content   string    `gorm:"size:500" json:"content"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
