package controllers

import (
	"net/http"

	"azring_to_go/config"
	"azring_to_go/service"
	"azring_to_go/service/msg"
	"azring_to_go/store"

	"github.com/gin-gonic/gin"
)

// PointsController 积分控制器
type PointsController struct {
	service *service.PointsService
}

// NewPointsController 创建积分控制器
func NewPointsController(cfg config.Config) *PointsController {
	return &PointsController{service: service.NewPointsService(store.Data)}
}

// Register 分配用户ID并初始化积分账户
func (pc *PointsController) Register(c *gin.Context) {
	userID, err := pc.service.Register()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
}

// Balance 查询积分余额
func (pc *PointsController) Balance(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少用户ID"})
		return
	}

	balance, err := pc.service.Balance(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": balance})
}

// History 查询积分流水
func (pc *PointsController) History(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少用户ID"})
		return
	}

	data, err := pc.service.History(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": data.Balance,
		"earned":  data.Earned,
		"spent":   data.Spent,
	})
}

// AddPointsRequest 发放积分请求结构体
type AddPointsRequest struct {
	UserID          string `json:"userId" binding:"required"`
	Amount          int    `json:"amount" binding:"required"`
	Source          string `json:"source"`
	TestType        string `json:"testType"`
	TestName        string `json:"testName"`
	RelatedRecordID string `json:"relatedRecordId"`
}

// Add 发放积分（完成问卷后调用）
func (pc *PointsController) Add(c *gin.Context) {
	var request AddPointsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	record, err := pc.service.AddPoints(request.UserID, request.Amount, request.Source, request.TestType, request.TestName, request.RelatedRecordID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "积分发放成功", "record": record})
}

// SpendPointsRequest 消费积分请求结构体
type SpendPointsRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Amount     int    `json:"amount" binding:"required"`
	Purpose    string `json:"purpose"`
	CouponID   string `json:"couponId"`
	CouponName string `json:"couponName"`
}

// Spend 消费积分
func (pc *PointsController) Spend(c *gin.Context) {
	var request SpendPointsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	record, err := pc.service.SpendPoints(request.UserID, request.Amount, request.Purpose, request.CouponID, request.CouponName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "积分消费成功", "record": record})
}
