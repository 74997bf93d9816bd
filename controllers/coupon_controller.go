package controllers

import (
	"net/http"

	"azring_to_go/config"
	"azring_to_go/service"
	"azring_to_go/service/msg"
	"azring_to_go/store"

	"github.com/gin-gonic/gin"
)

// CouponController 优惠券控制器
type CouponController struct {
	service *service.CouponService
}

// NewCouponController 创建优惠券控制器
func NewCouponController(cfg config.Config) *CouponController {
	points := service.NewPointsService(store.Data)
	return &CouponController{service: service.NewCouponService(store.Data, points)}
}

// Available 可兑换优惠券目录
func (cc *CouponController) Available(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少用户ID"})
		return
	}

	coupons, err := cc.service.Available(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "coupons": coupons})
}

// ExchangeRequest 兑换优惠券请求结构体
type ExchangeRequest struct {
	UserID   string `json:"userId" binding:"required"`
	ConfigID string `json:"configId" binding:"required"`
}

// Exchange 积分兑换优惠券
func (cc *CouponController) Exchange(c *gin.Context) {
	var request ExchangeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	coupon, err := cc.service.Exchange(request.UserID, request.ConfigID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "兑换成功", "coupon": coupon})
}

// My 查询用户优惠券，支持status过滤
func (cc *CouponController) My(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少用户ID"})
		return
	}

	coupons, err := cc.service.MyCoupons(userID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "coupons": coupons})
}

// UseRequest 核销优惠券请求结构体
type UseRequest struct {
	UserID   string `json:"userId" binding:"required"`
	CouponID string `json:"couponId" binding:"required"`
}

// Use 核销优惠券
func (cc *CouponController) Use(c *gin.Context) {
	var request UseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	coupon, err := cc.service.Use(request.UserID, request.CouponID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "使用成功", "coupon": coupon})
}
