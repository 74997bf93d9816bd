package routes

import (
	"azring_to_go/config"
	"azring_to_go/controllers"

	"github.com/gin-gonic/gin"
)

// InitPointsRoutes 初始化积分相关路由
func InitPointsRoutes(router *gin.Engine, cfg config.Config) {
	pointsController := controllers.NewPointsController(cfg)

	pointsGroup := router.Group("/api/points")
	{
		// 分配用户ID并初始化积分账户
		pointsGroup.POST("/register", pointsController.Register)
		// 查询积分余额
		pointsGroup.GET("/balance", pointsController.Balance)
		// 查询积分流水
		pointsGroup.GET("/history", pointsController.History)
		// 发放积分
		pointsGroup.POST("/add", pointsController.Add)
		// 消费积分
		pointsGroup.POST("/spend", pointsController.Spend)
	}
}
