package routes

import (
	"azring_to_go/config"
	"azring_to_go/controllers"

	"github.com/gin-gonic/gin"
)

// InitCouponRoutes 初始化优惠券相关路由
func InitCouponRoutes(router *gin.Engine, cfg config.Config) {
	couponController := controllers.NewCouponController(cfg)

	couponGroup := router.Group("/api/coupon")
	{
		// 可兑换优惠券目录
		couponGroup.GET("/available", couponController.Available)
		// 积分兑换优惠券
		couponGroup.POST("/exchange", couponController.Exchange)
		// 查询用户优惠券
		couponGroup.GET("/my", couponController.My)
		// 核销优惠券
		couponGroup.POST("/use", couponController.Use)
	}
}
