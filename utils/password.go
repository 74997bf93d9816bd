package utils

import (
	"crypto/subtle"

	"azring_to_go/config"

	"golang.org/x/crypto/bcrypt"
)

// VerifyAdminPassword 校验管理员密码
// 配置了ADMIN_PASSWORD_HASH时使用bcrypt校验，否则与ADMIN_PASSWORD比较
func VerifyAdminPassword(cfg config.Config, supplied string) bool {
	if supplied == "" {
		return false
	}
	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(cfg.AdminPassword), []byte(supplied)) == 1
}
