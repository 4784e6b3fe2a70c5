package models

import (
	"time"
)

// PointsHistory 积分流水，只增不改。BalanceAfter 记录本次变动后的余额快照，
// 按时间正序应满足 balance_after[i] == balance_after[i-1] + points_change[i]。
type PointsHistory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PointsChange    int       `gorm:"not null" json:"points_change"`            // 正数为增加，负数为扣除
	BalanceAfter    int       `gorm:"not null" json:"balance_after"`            // 变动后余额
	Description     string    `gorm:"size:200" json:"description"`              // 动作描述
	TransactionType string    `gorm:"size:20;not null" json:"transaction_type"` // reward, recharge, consume
	ReferenceID     *uint     `json:"reference_id,omitempty"`                   // 关联的帖子/资源 ID
	CreatedAt       time.Time `json:"created_at"`
}

func (PointsHistory) TableName() string {
	return "points_history"
}
