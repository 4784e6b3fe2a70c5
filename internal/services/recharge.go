package services

import (
	"time"

	"songguo/internal/models"
	"songguo/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 可选充值档位（松果数）
var RechargePackages = []int{100, 300, 500, 1000, 3000}

// RechargeService 充值。未接入真实支付网关，订单创建后立即按已支付处理，
// 订单写入和积分发放在同一个事务内。
type RechargeService struct {
	db     *gorm.DB
	points *PointsService
}

func NewRechargeService(db *gorm.DB) *RechargeService {
	return &RechargeService{db: db, points: NewPointsService(db)}
}

func validPackage(points int) bool {
	for _, p := range RechargePackages {
		if p == points {
			return true
		}
	}
	return false
}

// Recharge 创建充值订单并发放松果，返回订单和流水
func (s *RechargeService) Recharge(userID uint, points int) (*models.RechargeOrder, *models.PointsHistory, error) {
	if !validPackage(points) {
		return nil, nil, utils.NewAppError(utils.ErrInvalidInput, "无效的充值档位", nil)
	}

	now := time.Now()
	order := models.RechargeOrder{
		OrderNo: uuid.NewString(),
		UserID:  userID,
		Points:  points,
		Status:  "paid", // TODO: 接入支付网关后改为回调里置为 paid
		Method:  "mock",
		PaidAt:  &now,
	}

	var entry *models.PointsHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(&order).Error; txErr != nil {
			return utils.NewAppError(utils.ErrDatabase, "充值订单创建失败", txErr)
		}
		var txErr error
		entry, txErr = s.points.applyDeltaTx(tx, userID, points, DescRecharge, TxTypeRecharge, nil)
		return txErr
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, entry, nil
}
