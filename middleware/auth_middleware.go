package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"azring_to_go/config"
	"azring_to_go/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 管理员认证中间件
// 依次尝试：Authorization头的Bearer令牌、X-Admin-Password头、
// password查询参数、JSON请求体中的password字段
func AdminAuthMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bearer令牌方式（管理端登录后使用）
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			authParts := strings.SplitN(authHeader, " ", 2)
			if len(authParts) == 2 && authParts[0] == "Bearer" && utils.IsValidAdminToken(authParts[1], cfg) {
				c.Next()
				return
			}
		}

		password := c.GetHeader("X-Admin-Password")
		if password == "" {
			password = c.Query("password")
		}
		if password == "" {
			password = passwordFromBody(c)
		}

		if !utils.VerifyAdminPassword(cfg, password) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "管理员密码错误",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// passwordFromBody 从JSON请求体中提取password字段，并还原请求体供后续读取
func passwordFromBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
		return ""
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var body struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return ""
	}
	return body.Password
}

// CORSMiddleware 跨域中间件，预检请求直接返回空200
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Admin-Password")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

var (
	// 全局访问日志器实例
	accessLogger *utils.Logger
	loggerOnce   sync.Once
)

// RequestLogMiddleware 请求日志中间件，记录IP、方法和路径
func RequestLogMiddleware(cfg config.Config) gin.HandlerFunc {
	loggerOnce.Do(func() {
		var err error
		accessLogger, err = utils.NewLogger(cfg.LogDir, "access.log")
		if err != nil {
			fmt.Printf("初始化访问日志记录器失败: %v\n", err)
		}
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if accessLogger != nil {
			if err := accessLogger.Access("IP: %s, 方法: %s, 路径: %s", clientIP, c.Request.Method, c.Request.URL.Path); err != nil {
				// 写入文件失败时退化为控制台输出
				fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
				fmt.Printf("写入日志文件失败: %v\n", err)
			}
		} else {
			fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
		}

		c.Next()
	}
}
