package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// Search 全站搜索 GET /api/search?q=&limit=
// 帖子和资源一起搜，简单 ILIKE 匹配。
func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		Fail(c, http.StatusBadRequest, "缺少搜索关键词")
		return
	}
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 50 {
		limit = 20
	}
	pattern := "%" + q + "%"

	var posts []models.Post
	db.DB.Preload("Author").Preload("Category").
		Where("is_published = ?", true).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts)
	for i := range posts {
		if posts[i].PointsRequired > 0 {
			posts[i].Content = ""
		}
	}

	var resources []models.Resource
	db.DB.Preload("Author").Preload("Category").
		Where("is_published = ?", true).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&resources)
	for i := range resources {
		if resources[i].PointsRequired > 0 {
			resources[i].FileURL = ""
		}
	}

	OK(c, gin.H{"posts": posts, "resources": resources}, "")
}
