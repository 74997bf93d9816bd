package config

import (
	"os"
	"strconv"
)

// OSSConfig 阿里云OSS配置
type OSSConfig struct {
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
}

// RedisConfig Redis配置（STORE_BACKEND=redis时使用）
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL int // 小时
}

// SMSConfig 短信配置，AccessKeyID或TemplateCode为空时不发送中奖通知短信
type SMSConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	SignName        string
	TemplateCode    string
}

// Config 应用配置
type Config struct {
	Port string

	// StoreBackend 存储后端: oss / redis / file
	StoreBackend string
	DataDir      string
	OSS          OSSConfig
	Redis        RedisConfig

	// AdminPasswordHash 非空时优先使用bcrypt校验
	AdminPassword     string
	AdminPasswordHash string
	JWTConfig         JWTConfig
	SMS               SMSConfig

	LogDir string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
	tokenTTL, _ := strconv.Atoi(getenv("ACCESS_TOKEN_TTL", "24"))

	return Config{
		Port:         getenv("PORT", "8088"),
		StoreBackend: getenv("STORE_BACKEND", "oss"),
		DataDir:      getenv("DATA_DIR", "./data"),
		OSS: OSSConfig{
			Region:          getenv("OSS_REGION", "oss-cn-hangzhou"),
			AccessKeyID:     os.Getenv("OSS_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("OSS_ACCESS_KEY_SECRET"),
			Bucket:          getenv("OSS_BUCKET", "azlg-website1"),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		AdminPassword:     getenv("ADMIN_PASSWORD", "bycx2025"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTConfig: JWTConfig{
			SecretKey:      getenv("JWT_SECRET_KEY", "azring-admin-secret"),
			AccessTokenTTL: tokenTTL,
		},
		SMS: SMSConfig{
			AccessKeyID:     os.Getenv("SMS_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("SMS_ACCESS_KEY_SECRET"),
			SignName:        getenv("SMS_SIGN_NAME", "AZ Ring"),
			TemplateCode:    os.Getenv("SMS_TEMPLATE_CODE"),
		},
		LogDir: getenv("LOG_DIR", "./logs"),
	}
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
