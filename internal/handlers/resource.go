package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	likes     *services.LikeService
	purchases *services.PurchaseService
}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{
		likes:     services.NewLikeService(db.DB),
		purchases: services.NewPurchaseService(db.DB),
	}
}

// List 资源列表 /api/resources?page=&limit=&category_id=&file_type=&sort=&search=
func (h *ResourceHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Resource{}).Where("is_published = ?", true)

	if categoryID := utils.StringToUint(c.Query("category_id")); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if fileType := c.Query("file_type"); fileType != "" {
		query = query.Where("file_type = ?", fileType)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	switch c.DefaultQuery("sort", "latest") {
	case "popular":
		query = query.Order("likes_count DESC, created_at DESC")
	case "downloads":
		query = query.Order("downloads_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	query.Count(&total)

	var resources []models.Resource
	if err := query.Preload("Author").Preload("Category").
		Offset(offset).Limit(limit).Find(&resources).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "资源列表查询失败")
		return
	}

	// 列表里不暴露付费资源的下载地址
	for i := range resources {
		if resources[i].PointsRequired > 0 {
			resources[i].FileURL = ""
		}
	}

	OK(c, gin.H{"resources": resources, "total": total, "page": page, "limit": limit}, "")
}

// Detail 资源详情，付费资源未购买时不返回下载地址
func (h *ResourceHandler) Detail(c *gin.Context) {
	resourceID := utils.StringToUint(c.Param("id"))

	var resource models.Resource
	if err := db.DB.Preload("Author").Preload("Category").
		Where("is_published = ?", true).First(&resource, resourceID).Error; err != nil {
		Fail(c, http.StatusNotFound, "资源不存在")
		return
	}

	db.DB.Model(&models.Resource{}).Where("id = ?", resourceID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	resource.ViewsCount++

	user := CurrentUser(c)
	unlocked := resource.PointsRequired == 0
	if user != nil {
		resource.IsLiked = h.likes.IsLiked(user.ID, services.TargetResource, resource.ID)
		resource.IsFavorited = isFavorited(user.ID, "resource_id", resource.ID)
		resource.IsPurchased = h.purchases.HasPurchased(user.ID, services.TargetResource, resource.ID)
		if resource.IsPurchased || user.ID == resource.AuthorID || user.Role == "admin" {
			unlocked = true
		}
	}
	if !unlocked {
		resource.FileURL = ""
	}

	OK(c, gin.H{"resource": resource}, "")
}

type createResourceRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	FileURL        string `json:"file_url"`
	FileType       string `json:"file_type"`
	FileSize       int64  `json:"file_size"`
	ThumbnailURL   string `json:"thumbnail_url"`
	CategoryID     *uint  `json:"category_id"`
	PointsRequired int    `json:"points_required"`
	IsPremium      bool   `json:"is_premium"`
}

// Create 发布资源
func (h *ResourceHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}
	if req.Title == "" || req.FileURL == "" {
		Fail(c, http.StatusBadRequest, "标题和文件地址不能为空")
		return
	}
	if req.PointsRequired < 0 {
		Fail(c, http.StatusBadRequest, "解锁价格不能为负数")
		return
	}

	resource := models.Resource{
		AuthorID:       user.ID,
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Description:    req.Description,
		FileURL:        req.FileURL,
		FileType:       req.FileType,
		FileSize:       req.FileSize,
		ThumbnailURL:   req.ThumbnailURL,
		PointsRequired: req.PointsRequired,
		IsPremium:      req.IsPremium,
	}
	if err := db.DB.Create(&resource).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "发布失败")
		return
	}

	OK(c, gin.H{"resource": resource}, "发布成功")
}

// Download 记录下载并返回下载地址，付费资源需要先购买
func (h *ResourceHandler) Download(c *gin.Context) {
	user := CurrentUser(c)
	resourceID := utils.StringToUint(c.Param("id"))

	var resource models.Resource
	if err := db.DB.Where("is_published = ?", true).First(&resource, resourceID).Error; err != nil {
		Fail(c, http.StatusNotFound, "资源不存在")
		return
	}

	if resource.PointsRequired > 0 &&
		user.ID != resource.AuthorID && user.Role != "admin" &&
		!h.purchases.HasPurchased(user.ID, services.TargetResource, resource.ID) {
		Fail(c, http.StatusForbidden, "请先购买该资源")
		return
	}

	db.DB.Model(&models.Resource{}).Where("id = ?", resourceID).
		UpdateColumn("downloads_count", gorm.Expr("downloads_count + ?", 1))

	OK(c, gin.H{"file_url": resource.FileURL}, "")
}
