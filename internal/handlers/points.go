package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/services"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	points   *services.PointsService
	recharge *services.RechargeService
}

func NewPointsHandler() *PointsHandler {
	return &PointsHandler{
		points:   services.NewPointsService(db.DB),
		recharge: services.NewRechargeService(db.DB),
	}
}

// History 积分流水 GET /api/points/history?page=&limit=
func (h *PointsHandler) History(c *gin.Context) {
	user := CurrentUser(c)

	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))

	entries, total, err := h.points.GetHistory(user.ID, page, limit)
	if err != nil {
		FailErr(c, err)
		return
	}

	OK(c, gin.H{
		"history": entries,
		"total":   total,
		"balance": user.Points,
		"page":    page,
		"limit":   limit,
	}, "")
}

type rechargeRequest struct {
	Points int `json:"points"`
}

// Recharge 充值 POST /api/points/recharge（模拟支付，立即到账）
func (h *PointsHandler) Recharge(c *gin.Context) {
	user := CurrentUser(c)

	var req rechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}

	order, entry, err := h.recharge.Recharge(user.ID, req.Points)
	if err != nil {
		FailErr(c, err)
		return
	}

	OK(c, gin.H{
		"order":   order,
		"balance": entry.BalanceAfter,
	}, "充值成功")
}

// Packages 充值档位列表
func (h *PointsHandler) Packages(c *gin.Context) {
	OK(c, gin.H{"packages": services.RechargePackages}, "")
}
