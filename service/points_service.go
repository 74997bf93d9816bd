package service

import (
	"fmt"
	"time"

	"azring_to_go/models"
	"azring_to_go/store"
	"azring_to_go/utils"

	"github.com/google/uuid"
)

// PointsService 积分核心逻辑，每个用户一份积分文档
type PointsService struct {
	store store.Store
}

// NewPointsService 创建积分服务
func NewPointsService(s store.Store) *PointsService {
	return &PointsService{store: s}
}

func pointsPath(userID string) string {
	return "points/" + userID + ".json"
}

// Register 分配新的用户ID并初始化积分文档
func (s *PointsService) Register() (string, error) {
	userID := uuid.NewString()
	data := &models.PointsData{Earned: []models.PointsRecord{}, Spent: []models.PointsRecord{}}
	if err := s.store.WriteJSON(pointsPath(userID), data); err != nil {
		return "", err
	}
	return userID, nil
}

// loadPointsData 读取用户积分文档，不存在时返回空文档
func (s *PointsService) loadPointsData(userID string) (*models.PointsData, error) {
	data := &models.PointsData{Earned: []models.PointsRecord{}, Spent: []models.PointsRecord{}}
	if _, err := s.store.ReadJSON(pointsPath(userID), data); err != nil {
		return nil, err
	}
	return data, nil
}

// Balance 查询积分余额
func (s *PointsService) Balance(userID string) (int, error) {
	data, err := s.loadPointsData(userID)
	if err != nil {
		return 0, err
	}
	return data.Balance, nil
}

// History 查询积分流水
func (s *PointsService) History(userID string) (*models.PointsData, error) {
	return s.loadPointsData(userID)
}

// AddPoints 发放积分（完成问卷）。同一问卷只发放一次
func (s *PointsService) AddPoints(userID string, amount int, source, testType, testName, relatedRecordID string) (*models.PointsRecord, error) {
	if userID == "" {
		return nil, errValidation("缺少用户ID")
	}
	if amount <= 0 {
		return nil, errValidation("积分数量必须大于0")
	}

	data, err := s.loadPointsData(userID)
	if err != nil {
		return nil, err
	}

	// 同一问卷不重复发放
	for _, rec := range data.Earned {
		if rec.TestType == testType && rec.TestName == testName {
			return nil, errValidation(fmt.Sprintf("已经获得过\"%s\"的积分，不重复发放", testName))
		}
	}

	record := models.PointsRecord{
		ID:              utils.GenerateHistoryID("earn"),
		Timestamp:       time.Now().UnixMilli(),
		Amount:          amount,
		Source:          source,
		TestType:        testType,
		TestName:        testName,
		RelatedRecordID: relatedRecordID,
		UserID:          userID,
	}
	data.Earned = append(data.Earned, record)
	data.Balance += amount

	if err := s.store.WriteJSON(pointsPath(userID), data); err != nil {
		return nil, err
	}
	return &record, nil
}

// SpendPoints 消费积分（兑换优惠券）
func (s *PointsService) SpendPoints(userID string, amount int, purpose, couponID, couponName string) (*models.PointsRecord, error) {
	if userID == "" {
		return nil, errValidation("缺少用户ID")
	}
	if amount <= 0 {
		return nil, errValidation("消费积分数量必须大于0")
	}

	data, err := s.loadPointsData(userID)
	if err != nil {
		return nil, err
	}
	if data.Balance < amount {
		return nil, errValidation(fmt.Sprintf("积分不足！当前余额: %d分，需要: %d分", data.Balance, amount))
	}

	record := models.PointsRecord{
		ID:         utils.GenerateHistoryID("spend"),
		Timestamp:  time.Now().UnixMilli(),
		Amount:     amount,
		Purpose:    purpose,
		CouponID:   couponID,
		CouponName: couponName,
		UserID:     userID,
	}
	data.Spent = append(data.Spent, record)
	data.Balance -= amount

	if err := s.store.WriteJSON(pointsPath(userID), data); err != nil {
		return nil, err
	}
	return &record, nil
}
