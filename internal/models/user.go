package models

import (
	"time"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	AvatarURL  string    `json:"avatar_url"`
	Points     int       `gorm:"default:0" json:"points"`                     // 松果余额，只能通过积分服务变动
	Role       string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	IsVerified bool      `gorm:"default:false" json:"is_verified"`            // 认证作者
	IsPremium  bool      `gorm:"default:false" json:"is_premium"`             // 会员标识
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
