package services

import (
	"errors"
	"songguo/internal/models"
	"songguo/internal/utils"

	"gorm.io/gorm"
)

// PurchaseService 付费内容解锁。扣费、作者分成、购买记录在同一个事务内完成。
// 余额是否足够的校验放在这里而不是账本层：先原子扣减再检查扣减后的快照，
// 两个并发购买不可能都通过检查。
type PurchaseService struct {
	db     *gorm.DB
	points *PointsService
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db, points: NewPointsService(db)}
}

// UnlockResult 解锁结果
type UnlockResult struct {
	Purchase         *models.Purchase `json:"purchase"`
	AlreadyPurchased bool             `json:"already_purchased"`
	Balance          int              `json:"balance"`  // 扣费后余额
	AuthorID         uint             `json:"-"`        // 供调用方发通知
}

// Unlock 解锁付费帖子或资源。重复购买不再扣费，直接返回已有记录。
func (s *PurchaseService) Unlock(userID uint, targetType string, targetID uint) (*UnlockResult, error) {
	if targetType != TargetPost && targetType != TargetResource {
		return nil, utils.NewAppError(utils.ErrInvalidInput, "无效的目标类型", nil)
	}

	result := &UnlockResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 查目标价格和作者
		var price int
		var authorID uint
		switch targetType {
		case TargetPost:
			var post models.Post
			if err := tx.Select("id, author_id, points_required").First(&post, targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewAppError(utils.ErrNotFound, "内容不存在", nil)
				}
				return utils.NewAppError(utils.ErrDatabase, "内容查询失败", err)
			}
			price, authorID = post.PointsRequired, post.AuthorID
		case TargetResource:
			var resource models.Resource
			if err := tx.Select("id, author_id, points_required").First(&resource, targetID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewAppError(utils.ErrNotFound, "内容不存在", nil)
				}
				return utils.NewAppError(utils.ErrDatabase, "内容查询失败", err)
			}
			price, authorID = resource.PointsRequired, resource.AuthorID
		}
		result.AuthorID = authorID

		if price <= 0 {
			return utils.NewAppError(utils.ErrInvalidInput, "该内容无需购买", nil)
		}
		if authorID == userID {
			return utils.NewAppError(utils.ErrInvalidInput, "不能购买自己发布的内容", nil)
		}

		// 已购买过则不再扣费
		column := likeColumn(targetType) // 购买表复用同名外键列
		var existing models.Purchase
		findErr := tx.Where("user_id = ? AND "+column+" = ?", userID, targetID).First(&existing).Error
		if findErr == nil {
			result.Purchase = &existing
			result.AlreadyPurchased = true
			var buyer models.User
			if err := tx.Select("points").First(&buyer, userID).Error; err != nil {
				return utils.NewAppError(utils.ErrDatabase, "积分查询失败", err)
			}
			result.Balance = buyer.Points
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return utils.NewAppError(utils.ErrDatabase, "购买记录查询失败", findErr)
		}

		// 扣除买家松果。先扣再看快照，余额不足整个事务回滚。
		refID := targetID
		entry, err := s.points.applyDeltaTx(tx, userID, -price, DescUnlockContent, TxTypeConsume, &refID)
		if err != nil {
			return err
		}
		if entry.BalanceAfter < 0 {
			return utils.NewAppError(utils.ErrInsufficientPoints, "松果余额不足", nil)
		}
		result.Balance = entry.BalanceAfter

		// 购买记录
		purchase := models.Purchase{UserID: userID, PointsSpent: price}
		switch targetType {
		case TargetPost:
			purchase.PostID = &targetID
		case TargetResource:
			purchase.ResourceID = &targetID
		}
		if err := tx.Create(&purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.NewAppError(utils.ErrDuplicate, "请勿重复购买", err)
			}
			return utils.NewAppError(utils.ErrDatabase, "购买记录写入失败", err)
		}
		result.Purchase = &purchase

		// 作者分成
		if _, err := s.points.applyDeltaTx(tx, authorID, price, DescContentConsumed, TxTypeReward, &refID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasPurchased 查询用户是否已购买某内容
func (s *PurchaseService) HasPurchased(userID uint, targetType string, targetID uint) bool {
	column := likeColumn(targetType)
	if column == "" {
		return false
	}
	var purchase models.Purchase
	return s.db.Where("user_id = ? AND "+column+" = ?", userID, targetID).First(&purchase).Error == nil
}
