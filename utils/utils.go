package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsValidPhone 验证手机号格式：1开头，第二位3-9，共11位数字
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

const recordIDCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// randSuffix 生成n位随机字符串（小写字母+数字）
func randSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// 随机数生成失败时退化为纳秒时间戳片段
		return fmt.Sprintf("%09d", time.Now().UnixNano()%1e9)[:n]
	}
	for i, b := range buf {
		buf[i] = recordIDCharset[int(b)%len(recordIDCharset)]
	}
	return string(buf)
}

// GenerateRecordID 生成记录ID，格式: <前缀><毫秒时间戳>-<9位随机后缀>
// 如 U1737350400000-k3j9x2m1q。不做唯一性复查，碰撞概率视为可忽略
func GenerateRecordID(prefix string) string {
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), randSuffix(9))
}

// GenerateHistoryID 生成积分流水ID，格式: <类型>_<毫秒时间戳>_<9位随机后缀>
func GenerateHistoryID(kind string) string {
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), randSuffix(9))
}

// GenerateCouponCode 生成优惠券兑换码，格式: AZ-<8位大写字母数字>
func GenerateCouponCode() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("AZ-%08d", time.Now().UnixNano()%1e8)
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return "AZ-" + string(buf)
}

// FormatDateTime 格式化为 YYYY-MM-DD HH:MM:SS
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ParseDateTime 解析 YYYY-MM-DD HH:MM:SS 格式时间（本地时区）
func ParseDateTime(datetimeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", datetimeStr, time.Local)
}

// FormatISOTime 格式化为ISO格式（RFC3339），文档中的时间字段统一使用该格式
func FormatISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseFlexibleTime 按常见格式依次尝试解析时间字符串
func ParseFlexibleTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if layout == "2006-01-02 15:04:05" || layout == "2006-01-02" {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析的时间格式: %s", s)
}

// Pagination 分页辅助函数，返回偏移量和每页大小
func Pagination(pageNum, pageSize int) (int, int) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	offset := (pageNum - 1) * pageSize
	return offset, pageSize
}
