package services

import (
	"errors"
	"songguo/internal/models"
	"songguo/internal/utils"

	"gorm.io/gorm"
)

// 点赞目标类型
const (
	TargetPost     = "post"
	TargetResource = "resource"
	TargetComment  = "comment"
)

// LikeService 点赞开关。点赞记录和目标上的冗余计数 likes_count
// 在同一个事务内变动，likes_count 始终等于 likes 表中的真实数量。
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// likeColumn 目标类型对应 likes 表的外键列
func likeColumn(targetType string) string {
	switch targetType {
	case TargetPost:
		return "post_id"
	case TargetResource:
		return "resource_id"
	case TargetComment:
		return "comment_id"
	}
	return ""
}

// Toggle 切换点赞状态，已点赞则取消，未点赞则添加，返回切换后的状态。
// 同一 (user, target) 的并发切换由联合唯一索引和删除行锁串行化：
// 并发插入只会有一个成功（另一个整个事务回滚），并发删除只有
// RowsAffected > 0 的那个会扣减计数。
func (s *LikeService) Toggle(userID uint, targetType string, targetID uint) (liked bool, err error) {
	column := likeColumn(targetType)
	if column == "" {
		return false, utils.NewAppError(utils.ErrInvalidInput, "无效的目标类型", nil)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 目标必须存在
		if txErr := s.checkTargetExists(tx, targetType, targetID); txErr != nil {
			return txErr
		}

		var existing models.Like
		findErr := tx.Where("user_id = ? AND "+column+" = ?", userID, targetID).First(&existing).Error

		if findErr == nil {
			// 已点赞，取消
			result := tx.Delete(&models.Like{}, existing.ID)
			if result.Error != nil {
				return utils.NewAppError(utils.ErrDatabase, "取消点赞失败", result.Error)
			}
			liked = false
			if result.RowsAffected == 0 {
				// 并发取消已经删掉了这条记录，计数不再扣减
				return nil
			}
			return s.bumpLikesCount(tx, targetType, targetID, -1)
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return utils.NewAppError(utils.ErrDatabase, "点赞查询失败", findErr)
		}

		// 未点赞，添加
		newLike := models.Like{UserID: userID}
		switch targetType {
		case TargetPost:
			newLike.PostID = &targetID
		case TargetResource:
			newLike.ResourceID = &targetID
		case TargetComment:
			newLike.CommentID = &targetID
		}
		if txErr := tx.Create(&newLike).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrDuplicatedKey) {
				// 并发点赞抢先插入，整个事务回滚，计数不受影响
				return utils.NewAppError(utils.ErrDuplicate, "请勿重复点赞", txErr)
			}
			return utils.NewAppError(utils.ErrDatabase, "点赞失败", txErr)
		}
		liked = true
		return s.bumpLikesCount(tx, targetType, targetID, 1)
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// IsLiked 查询用户是否已点赞某目标
func (s *LikeService) IsLiked(userID uint, targetType string, targetID uint) bool {
	column := likeColumn(targetType)
	if column == "" {
		return false
	}
	var like models.Like
	return s.db.Where("user_id = ? AND "+column+" = ?", userID, targetID).First(&like).Error == nil
}

func (s *LikeService) checkTargetExists(tx *gorm.DB, targetType string, targetID uint) error {
	var err error
	switch targetType {
	case TargetPost:
		err = tx.Select("id").First(&models.Post{}, targetID).Error
	case TargetResource:
		err = tx.Select("id").First(&models.Resource{}, targetID).Error
	case TargetComment:
		err = tx.Select("id").First(&models.Comment{}, targetID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAppError(utils.ErrNotFound, "点赞目标不存在", nil)
		}
		return utils.NewAppError(utils.ErrDatabase, "目标查询失败", err)
	}
	return nil
}

func (s *LikeService) bumpLikesCount(tx *gorm.DB, targetType string, targetID uint, delta int) error {
	var err error
	expr := gorm.Expr("likes_count + ?", delta)
	switch targetType {
	case TargetPost:
		err = tx.Model(&models.Post{}).Where("id = ?", targetID).UpdateColumn("likes_count", expr).Error
	case TargetResource:
		err = tx.Model(&models.Resource{}).Where("id = ?", targetID).UpdateColumn("likes_count", expr).Error
	case TargetComment:
		err = tx.Model(&models.Comment{}).Where("id = ?", targetID).UpdateColumn("likes_count", expr).Error
	}
	if err != nil {
		return utils.NewAppError(utils.ErrDatabase, "点赞计数更新失败", err)
	}
	return nil
}
