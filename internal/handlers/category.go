package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

const categoryCacheKey = "categories:all"

// List 分类列表 GET /api/categories，分类变动少，走本地缓存
func (h *CategoryHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(categoryCacheKey); cached != nil {
		OK(c, gin.H{"categories": cached}, "")
		return
	}

	var categories []models.Category
	if err := db.DB.Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "分类查询失败")
		return
	}

	utils.GetCache().Set(categoryCacheKey, categories, 10*time.Minute)
	OK(c, gin.H{"categories": categories}, "")
}
