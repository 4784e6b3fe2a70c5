package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List 我的消息列表 GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var notifications []models.Notification
	if err := db.DB.Preload("Actor").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "消息查询失败")
		return
	}

	var unread int64
	db.DB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)

	OK(c, gin.H{"notifications": notifications, "unread": unread}, "")
}

// Read 标记单条消息已读
func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	result := db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_read", true)
	if result.RowsAffected == 0 {
		Fail(c, http.StatusNotFound, "消息不存在")
		return
	}

	OK(c, nil, "已读")
}

// ReadAll 全部标记已读
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := CurrentUser(c)

	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)

	OK(c, nil, "全部已读")
}

// Delete 删除单条消息
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	result := db.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Notification{})
	if result.RowsAffected == 0 {
		Fail(c, http.StatusNotFound, "消息不存在")
		return
	}

	OK(c, nil, "删除成功")
}
