package routes

import (
	"azring_to_go/config"

	"github.com/gin-gonic/gin"
)

// InitRoutes 初始化路由配置 - 完全匹配Node版本的api目录
func InitRoutes(router *gin.Engine, cfg config.Config) {
	// 初始化抽奖相关路由
	InitLotteryRoutes(router, cfg)

	// 初始化管理员相关路由
	InitAdminRoutes(router, cfg)

	// 初始化积分相关路由
	InitPointsRoutes(router, cfg)

	// 初始化优惠券相关路由
	InitCouponRoutes(router, cfg)
}
