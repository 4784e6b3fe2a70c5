package handlers

import (
	"net/http"
	"songguo/internal/middleware"
	"songguo/internal/models"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
)

// OK 成功响应，统一 {success, data, message} 结构
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// FailErr 按错误类型映射状态码。AppError 一一映射，
// 其它错误一律 500，不向客户端暴露内部细节。
func FailErr(c *gin.Context, err error) {
	if appErr, ok := err.(*utils.AppError); ok {
		c.JSON(utils.AppErrorToHTTPStatus(appErr.Code), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
}

// CurrentUser 从上下文取登录用户，未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(middleware.CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}
