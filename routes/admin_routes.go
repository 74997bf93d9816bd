package routes

import (
	"azring_to_go/config"
	"azring_to_go/controllers"

	"github.com/gin-gonic/gin"
)

// InitAdminRoutes 初始化管理员相关路由
func InitAdminRoutes(router *gin.Engine, cfg config.Config) {
	authController := controllers.NewAuthController(cfg)

	adminGroup := router.Group("/api/admin")
	{
		// 管理员登录，签发JWT令牌
		adminGroup.POST("/login", authController.Login)
	}
}
