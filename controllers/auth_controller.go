package controllers

import (
	"net/http"

	"azring_to_go/config"
	"azring_to_go/service/msg"
	"azring_to_go/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 管理员认证控制器
type AuthController struct {
	cfg config.Config
}

// NewAuthController 创建认证控制器
func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

// LoginRequest 管理员登录请求结构体
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login 管理员登录，校验通过后签发JWT令牌
func (ac *AuthController) Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	if !utils.VerifyAdminPassword(ac.cfg, request.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "管理员密码错误"})
		return
	}

	token, err := utils.GenerateAdminToken(ac.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresIn": ac.cfg.JWTConfig.AccessTokenTTL * 3600,
	})
}
