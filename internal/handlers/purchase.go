package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchases *services.PurchaseService
	notify    *services.NotificationService
}

func NewPurchaseHandler() *PurchaseHandler {
	return &PurchaseHandler{
		purchases: services.NewPurchaseService(db.DB),
		notify:    services.NewNotificationService(db.DB),
	}
}

type unlockRequest struct {
	TargetType string `json:"targetType"` // post 或 resource
	TargetID   uint   `json:"targetId"`
}

// Unlock 解锁付费内容 POST /api/purchases
func (h *PurchaseHandler) Unlock(c *gin.Context) {
	user := CurrentUser(c)

	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "缺少必要参数")
		return
	}
	if req.TargetType == "" || req.TargetID == 0 {
		Fail(c, http.StatusBadRequest, "缺少必要参数")
		return
	}

	result, err := h.purchases.Unlock(user.ID, req.TargetType, req.TargetID)
	if err != nil {
		FailErr(c, err)
		return
	}

	if result.AlreadyPurchased {
		OK(c, result, "已购买过该内容")
		return
	}

	h.notify.NotifyAsync(result.AuthorID, &user.ID, models.NotificationTypePurchase,
		user.Username+" 购买了你的内容，获得 "+
			strconv.Itoa(result.Purchase.PointsSpent)+" 松果")

	OK(c, result, "解锁成功")
}

// List 我的购买记录
func (h *PurchaseHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var purchases []models.Purchase
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "购买记录查询失败")
		return
	}

	OK(c, gin.H{"purchases": purchases}, "")
}
