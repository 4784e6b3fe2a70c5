package models

import (
	"time"
)

// RechargeOrder 充值订单。目前没有接入真实支付网关，
// 订单创建后立即标记为 paid 并发放松果（模拟支付）。
type RechargeOrder struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	OrderNo   string     `gorm:"uniqueIndex;size:36;not null" json:"order_no"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	User      User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Points    int        `gorm:"not null" json:"points"`                  // 发放的松果数
	Status    string     `gorm:"size:20;default:'pending'" json:"status"` // pending, paid, failed
	Method    string     `gorm:"size:20;default:'mock'" json:"method"`    // 支付方式，预留
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
