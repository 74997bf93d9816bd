package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore 本地文件存储后端，用于本地开发调试
type FileStore struct {
	baseDir string
}

// NewFileStore 创建文件存储，baseDir下按文档路径建立子目录
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// ReadJSON 读取JSON文档，文件不存在时返回(false, nil)
func (s *FileStore) ReadJSON(path string, out any) (bool, error) {
	content, err := os.ReadFile(filepath.Join(s.baseDir, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("读取%s失败: %v", path, err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("解析%s失败: %v", path, err)
	}
	return true, nil
}

// WriteJSON 整体覆盖写入JSON文档
func (s *FileStore) WriteJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化%s失败: %v", path, err)
	}

	fullPath := filepath.Join(s.baseDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %v", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("写入%s失败: %v", path, err)
	}
	return nil
}
