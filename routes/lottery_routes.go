package routes

import (
	"azring_to_go/config"
	"azring_to_go/controllers"
	"azring_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitLotteryRoutes 初始化抽奖活动相关路由
func InitLotteryRoutes(router *gin.Engine, cfg config.Config) {
	// 初始化抽奖控制器
	lotteryController := controllers.NewLotteryController(cfg)

	// 添加前置URL前缀
	lotteryGroup := router.Group("/api/lottery")
	{
		// 获取活动配置（公开）
		lotteryGroup.GET("/config", lotteryController.GetConfig)
		// 用户报名（公开）
		lotteryGroup.POST("/submit", lotteryController.Submit)
	}

	// 管理接口需要管理员认证
	adminGroup := router.Group("/api/lottery")
	adminGroup.Use(middleware.AdminAuthMiddleware(cfg))
	{
		// 更新活动配置
		adminGroup.POST("/config", lotteryController.UpdateConfig)
		// 执行抽奖
		adminGroup.POST("/draw", lotteryController.Draw)
		// 分页查询参与者列表
		adminGroup.GET("/list", lotteryController.List)
		// 导出CSV
		adminGroup.GET("/export", lotteryController.Export)
		// 导出Excel
		adminGroup.GET("/export_excel", lotteryController.ExportExcel)
	}
}
