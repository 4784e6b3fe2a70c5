package handlers

import (
	"errors"
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteHandler struct{}

func NewFavoriteHandler() *FavoriteHandler {
	return &FavoriteHandler{}
}

type toggleFavoriteRequest struct {
	TargetType string `json:"targetType"` // post 或 resource
	TargetID   uint   `json:"targetId"`
}

// Toggle 收藏/取消收藏 POST /api/favorites
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	user := CurrentUser(c)

	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "缺少必要参数")
		return
	}
	if req.TargetType != services.TargetPost && req.TargetType != services.TargetResource {
		Fail(c, http.StatusBadRequest, "无效的目标类型")
		return
	}

	// 目标必须存在
	var column string
	var targetErr error
	switch req.TargetType {
	case services.TargetPost:
		column = "post_id"
		targetErr = db.DB.Select("id").First(&models.Post{}, req.TargetID).Error
	case services.TargetResource:
		column = "resource_id"
		targetErr = db.DB.Select("id").First(&models.Resource{}, req.TargetID).Error
	}
	if targetErr != nil {
		Fail(c, http.StatusNotFound, "收藏目标不存在")
		return
	}

	var existing models.Favorite
	err := db.DB.Where("user_id = ? AND "+column+" = ?", user.ID, req.TargetID).First(&existing).Error
	if err == nil {
		// 已收藏，取消
		db.DB.Delete(&existing)
		OK(c, gin.H{"favorited": false}, "取消收藏成功")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		Fail(c, http.StatusInternalServerError, "收藏查询失败")
		return
	}

	favorite := models.Favorite{UserID: user.ID}
	switch req.TargetType {
	case services.TargetPost:
		favorite.PostID = &req.TargetID
	case services.TargetResource:
		favorite.ResourceID = &req.TargetID
	}
	if err := db.DB.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			OK(c, gin.H{"favorited": true}, "已收藏")
			return
		}
		Fail(c, http.StatusInternalServerError, "收藏失败")
		return
	}

	OK(c, gin.H{"favorited": true}, "收藏成功")
}

// List 我的收藏列表
func (h *FavoriteHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var favorites []models.Favorite
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(100).
		Find(&favorites).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "收藏查询失败")
		return
	}

	OK(c, gin.H{"favorites": favorites}, "")
}
