package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// ListUsers 用户列表 GET /api/admin/users?page=&limit=&search=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "用户列表查询失败")
		return
	}

	OK(c, gin.H{"users": users, "total": total, "page": page, "limit": limit}, "")
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole 修改用户角色 PUT /api/admin/users/:id/role
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	admin := CurrentUser(c)
	userID := utils.StringToUint(c.Param("id"))

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}
	if req.Role != "user" && req.Role != "admin" {
		Fail(c, http.StatusBadRequest, "无效的角色")
		return
	}
	if userID == admin.ID {
		Fail(c, http.StatusBadRequest, "不能修改自己的角色")
		return
	}

	result := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", req.Role)
	if result.Error != nil {
		Fail(c, http.StatusInternalServerError, "角色更新失败")
		return
	}
	if result.RowsAffected == 0 {
		Fail(c, http.StatusNotFound, "用户不存在")
		return
	}

	OK(c, nil, "角色更新成功")
}
