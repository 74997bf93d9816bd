package store

import (
	"fmt"
	"log"

	"azring_to_go/config"
)

// Store 对象存储适配器，按路径读写完整JSON文档
// ReadJSON 在文档不存在时返回 (false, nil)，调用方使用默认值
type Store interface {
	ReadJSON(path string, out any) (bool, error)
	WriteJSON(path string, data any) error
}

// Data 全局存储实例，由main初始化
var Data Store

// Init 根据配置初始化存储后端
func Init(cfg config.Config) error {
	switch cfg.StoreBackend {
	case "oss":
		s, err := NewOSSStore(cfg.OSS)
		if err != nil {
			return fmt.Errorf("初始化OSS存储失败: %v", err)
		}
		Data = s
	case "redis":
		Data = NewRedisStore(cfg.Redis)
	case "file":
		Data = NewFileStore(cfg.DataDir)
	default:
		return fmt.Errorf("未知的存储后端: %s", cfg.StoreBackend)
	}

	log.Printf("存储后端初始化完成: %s", cfg.StoreBackend)
	return nil
}
