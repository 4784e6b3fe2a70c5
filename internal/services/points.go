package services

import (
	"errors"
	"songguo/internal/models"
	"songguo/internal/utils"

	"gorm.io/gorm"
)

// 交易类型常量
const (
	TxTypeReward   = "reward"
	TxTypeRecharge = "recharge"
	TxTypeConsume  = "consume"
)

// 动作描述常量
const (
	DescRegisterBonus   = "新用户注册奖励"
	DescRecharge        = "充值松果"
	DescUnlockContent   = "解锁付费内容"
	DescContentConsumed = "内容被购买"
)

// RegisterBonusPoints 新用户注册赠送的松果数
const RegisterBonusPoints = 100

// PointsService 积分账本。所有余额变动必须走 ApplyDelta，
// 余额更新和流水写入在同一个事务内完成。
type PointsService struct {
	db *gorm.DB
}

func NewPointsService(db *gorm.DB) *PointsService {
	return &PointsService{db: db}
}

// ApplyDelta 对用户余额应用一次有符号变动并记录流水。
// 并发调用同一用户时由 users 行锁串行化（UPDATE ... SET points = points + ?），
// 调用方不要自己读余额再算新值回写。
// 注意：账本层不做余额下限校验，扣费路径的余额检查在 PurchaseService。
func (s *PointsService) ApplyDelta(userID uint, delta int, description string, txType string, referenceID *uint) (*models.PointsHistory, error) {
	var entry *models.PointsHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.applyDeltaTx(tx, userID, delta, description, txType, referenceID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// applyDeltaTx 在已有事务内应用变动，供购买、充值等复合操作复用。
func (s *PointsService) applyDeltaTx(tx *gorm.DB, userID uint, delta int, description string, txType string, referenceID *uint) (*models.PointsHistory, error) {
	// 1. 原子更新余额，行锁保证同一用户的并发变动串行执行
	result := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return nil, utils.NewAppError(utils.ErrDatabase, "积分更新失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, utils.NewAppError(utils.ErrUserNotFound, "用户不存在", nil)
	}

	// 2. 读回本事务内更新后的余额作为快照
	var user models.User
	if err := tx.Select("points").First(&user, userID).Error; err != nil {
		return nil, utils.NewAppError(utils.ErrDatabase, "积分查询失败", err)
	}

	// 3. 写入流水
	entry := models.PointsHistory{
		UserID:          userID,
		PointsChange:    delta,
		BalanceAfter:    user.Points,
		Description:     description,
		TransactionType: txType,
		ReferenceID:     referenceID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, utils.NewAppError(utils.ErrDatabase, "积分流水写入失败", err)
	}
	return &entry, nil
}

// RegisterBonus 注册奖励，账号创建时调用一次
func (s *PointsService) RegisterBonus(userID uint) (*models.PointsHistory, error) {
	return s.ApplyDelta(userID, RegisterBonusPoints, DescRegisterBonus, TxTypeReward, nil)
}

// GetHistory 分页查询积分流水，最新在前
func (s *PointsService) GetHistory(userID uint, page, limit int) ([]models.PointsHistory, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.db.Model(&models.PointsHistory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, utils.NewAppError(utils.ErrDatabase, "积分流水查询失败", err)
	}

	var entries []models.PointsHistory
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, utils.NewAppError(utils.ErrDatabase, "积分流水查询失败", err)
	}
	return entries, total, nil
}

// GetBalance 查询当前余额
func (s *PointsService) GetBalance(userID uint) (int, error) {
	var user models.User
	if err := s.db.Select("points").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, utils.NewAppError(utils.ErrUserNotFound, "用户不存在", nil)
		}
		return 0, utils.NewAppError(utils.ErrDatabase, "积分查询失败", err)
	}
	return user.Points, nil
}
