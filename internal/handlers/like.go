package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likes  *services.LikeService
	notify *services.NotificationService
}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{
		likes:  services.NewLikeService(db.DB),
		notify: services.NewNotificationService(db.DB),
	}
}

type toggleLikeRequest struct {
	TargetType string `json:"targetType"`
	TargetID   uint   `json:"targetId"`
}

// Toggle 切换点赞状态 POST /api/likes
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := CurrentUser(c)

	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "缺少必要参数")
		return
	}
	if req.TargetType == "" || req.TargetID == 0 {
		Fail(c, http.StatusBadRequest, "缺少必要参数")
		return
	}

	liked, err := h.likes.Toggle(user.ID, req.TargetType, req.TargetID)
	if err != nil {
		FailErr(c, err)
		return
	}

	message := "取消点赞成功"
	if liked {
		message = "点赞成功"
		h.notifyAuthor(user, req.TargetType, req.TargetID)
	}

	OK(c, gin.H{"liked": liked}, message)
}

// notifyAuthor 点赞后异步通知内容作者，自己赞自己不通知
func (h *LikeHandler) notifyAuthor(actor *models.User, targetType string, targetID uint) {
	go func() {
		var authorID uint
		var what string
		switch targetType {
		case services.TargetPost:
			var post models.Post
			if err := db.DB.Select("author_id, title").First(&post, targetID).Error; err != nil {
				return
			}
			authorID, what = post.AuthorID, "帖子《"+post.Title+"》"
		case services.TargetResource:
			var resource models.Resource
			if err := db.DB.Select("author_id, title").First(&resource, targetID).Error; err != nil {
				return
			}
			authorID, what = resource.AuthorID, "资源《"+resource.Title+"》"
		case services.TargetComment:
			var comment models.Comment
			if err := db.DB.Select("user_id").First(&comment, targetID).Error; err != nil {
				return
			}
			authorID, what = comment.UserID, "评论"
		default:
			return
		}
		if authorID == 0 || authorID == actor.ID {
			return
		}
		h.notify.Notify(authorID, &actor.ID, models.NotificationTypeLike,
			actor.Username+" 赞了你的"+what)
	}()
}
