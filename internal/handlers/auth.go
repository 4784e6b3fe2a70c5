package handlers

import (
	"errors"
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"
	"songguo/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	points *services.PointsService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		points: services.NewPointsService(db.DB),
	}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register 注册新用户，赠送注册松果并自动登录
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		Fail(c, http.StatusBadRequest, "所有字段都是必填的")
		return
	}
	if !utils.ValidateUsername(req.Username) {
		Fail(c, http.StatusBadRequest, "用户名格式不正确（3-20字符，只允许字母、数字、下划线）")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		Fail(c, http.StatusBadRequest, "邮箱格式不正确")
		return
	}
	if !utils.ValidatePassword(req.Password) {
		Fail(c, http.StatusBadRequest, "密码至少需要6位字符")
		return
	}
	if req.Password != req.ConfirmPassword {
		Fail(c, http.StatusBadRequest, "两次输入的密码不一致")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Fail(c, http.StatusConflict, "用户名或邮箱已存在")
			return
		}
		Fail(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}

	// 注册奖励，只发一次
	if _, err := h.points.RegisterBonus(user.ID); err != nil {
		FailErr(c, err)
		return
	}
	user.Points = services.RegisterBonusPoints

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	OK(c, gin.H{"user": user}, "注册成功")
}

type loginRequest struct {
	Username string `json:"username"` // 用户名或邮箱
	Password string `json:"password"`
}

// Login 登录，用户名和邮箱都可以
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}

	var user models.User
	err := db.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		err = db.DB.Where("email = ?", req.Username).First(&user).Error
	}
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	OK(c, gin.H{"user": user}, "登录成功")
}

// Logout 退出登录
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	OK(c, nil, "已退出登录")
}

// Me 当前登录用户信息和统计
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Fail(c, http.StatusUnauthorized, "请先登录")
		return
	}

	var postCount, resourceCount, likesReceived int64
	db.DB.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&postCount)
	db.DB.Model(&models.Resource{}).Where("author_id = ?", user.ID).Count(&resourceCount)
	db.DB.Model(&models.Like{}).
		Where("post_id IN (?)", db.DB.Model(&models.Post{}).Select("id").Where("author_id = ?", user.ID)).
		Or("resource_id IN (?)", db.DB.Model(&models.Resource{}).Select("id").Where("author_id = ?", user.ID)).
		Count(&likesReceived)

	OK(c, gin.H{
		"user": user,
		"stats": gin.H{
			"posts_count":     postCount,
			"resources_count": resourceCount,
			"likes_received":  likesReceived,
		},
	}, "")
}
