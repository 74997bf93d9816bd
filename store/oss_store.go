package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"azring_to_go/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore 阿里云OSS存储后端
type OSSStore struct {
	bucket *oss.Bucket
}

// NewOSSStore 创建OSS存储客户端
func NewOSSStore(cfg config.OSSConfig) (*OSSStore, error) {
	endpoint := fmt.Sprintf("https://%s.aliyuncs.com", cfg.Region)
	client, err := oss.New(endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建OSS客户端失败: %v", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("获取Bucket失败: %v", err)
	}

	return &OSSStore{bucket: bucket}, nil
}

// ReadJSON 读取JSON文档，文件不存在时返回(false, nil)
func (s *OSSStore) ReadJSON(path string, out any) (bool, error) {
	body, err := s.bucket.GetObject(path)
	if err != nil {
		if serviceErr, ok := err.(oss.ServiceError); ok && serviceErr.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("读取%s失败: %v", path, err)
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return false, fmt.Errorf("读取%s失败: %v", path, err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("解析%s失败: %v", path, err)
	}
	return true, nil
}

// WriteJSON 整体覆盖写入JSON文档
func (s *OSSStore) WriteJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化%s失败: %v", path, err)
	}
	if err := s.bucket.PutObject(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("写入%s失败: %v", path, err)
	}
	return nil
}
