package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore 内存存储后端，供单元测试使用
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// ReadJSON 读取JSON文档，key不存在时返回(false, nil)
func (s *MemoryStore) ReadJSON(path string, out any) (bool, error) {
	s.mu.RLock()
	content, ok := s.objects[path]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("解析%s失败: %v", path, err)
	}
	return true, nil
}

// WriteJSON 整体覆盖写入JSON文档
func (s *MemoryStore) WriteJSON(path string, data any) error {
	content, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化%s失败: %v", path, err)
	}
	s.mu.Lock()
	s.objects[path] = content
	s.mu.Unlock()
	return nil
}
