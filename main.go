package main

import (
	"log"

	"azring_to_go/config"
	"azring_to_go/middleware"
	"azring_to_go/routes"
	"azring_to_go/service/msg"
	"azring_to_go/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载.env文件，不存在时使用进程环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到.env文件，使用环境变量")
	}

	// 加载配置
	appConfig := config.LoadConfig()

	// 初始化存储后端
	if err := store.Init(appConfig); err != nil {
		log.Fatalf("初始化存储后端失败: %v", err)
	}

	// 初始化参数校验翻译器
	if err := msg.InitTranslator("zh"); err != nil {
		log.Fatalf("初始化翻译器失败: %v", err)
	}

	// 创建Gin引擎
	router := gin.Default()

	// 设置中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware(appConfig))

	// 初始化路由
	routes.InitRoutes(router, appConfig)

	// 启动服务器
	log.Printf("Server starting on port %s\n", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
