package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"azring_to_go/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore Redis存储后端，文档JSON以path为key整体存取
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建Redis存储客户端
func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client}
}

// ReadJSON 读取JSON文档，key不存在时返回(false, nil)
func (s *RedisStore) ReadJSON(path string, out any) (bool, error) {
	content, err := s.client.Get(context.Background(), path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("读取%s失败: %v", path, err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("解析%s失败: %v", path, err)
	}
	return true, nil
}

// WriteJSON 整体覆盖写入JSON文档，不设置过期时间
func (s *RedisStore) WriteJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化%s失败: %v", path, err)
	}
	if err := s.client.Set(context.Background(), path, content, 0).Err(); err != nil {
		return fmt.Errorf("写入%s失败: %v", path, err)
	}
	return nil
}
