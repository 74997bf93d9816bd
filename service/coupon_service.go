package service

import (
	"time"

	"azring_to_go/models"
	"azring_to_go/store"
	"azring_to_go/utils"

	"github.com/google/uuid"
)

// CouponService 优惠券核心逻辑，兑换时联动积分服务扣分
type CouponService struct {
	store  store.Store
	points *PointsService
}

// NewCouponService 创建优惠券服务
func NewCouponService(s store.Store, points *PointsService) *CouponService {
	return &CouponService{store: s, points: points}
}

func couponPath(userID string) string {
	return "coupons/" + userID + ".json"
}

// loadCouponData 读取用户优惠券文档，不存在时返回空文档
func (s *CouponService) loadCouponData(userID string) (*models.CouponData, error) {
	data := &models.CouponData{Coupons: []models.Coupon{}}
	if _, err := s.store.ReadJSON(couponPath(userID), data); err != nil {
		return nil, err
	}
	return data, nil
}

// AvailableCoupon 兑换目录条目，附带当前用户是否兑换得起
type AvailableCoupon struct {
	models.CouponConfig
	CanAfford   bool `json:"canAfford"`
	UserBalance int  `json:"userBalance"`
}

// Available 返回可兑换优惠券目录
func (s *CouponService) Available(userID string) ([]AvailableCoupon, error) {
	balance, err := s.points.Balance(userID)
	if err != nil {
		return nil, err
	}

	catalog := models.CouponCatalog()
	result := make([]AvailableCoupon, 0, len(catalog))
	for _, config := range catalog {
		result = append(result, AvailableCoupon{
			CouponConfig: config,
			CanAfford:    balance >= config.PointsCost,
			UserBalance:  balance,
		})
	}
	return result, nil
}

// Exchange 积分兑换优惠券
func (s *CouponService) Exchange(userID, configID string) (*models.Coupon, error) {
	if userID == "" {
		return nil, errValidation("缺少用户ID")
	}

	var config *models.CouponConfig
	for _, c := range models.CouponCatalog() {
		if c.ID == configID {
			config = &c
			break
		}
	}
	if config == nil {
		return nil, errValidation("优惠券不存在")
	}

	couponID := uuid.NewString()
	if _, err := s.points.SpendPoints(userID, config.PointsCost, "兑换"+config.Name, couponID, config.Name); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	coupon := models.Coupon{
		ID:          couponID,
		ConfigID:    config.ID,
		Name:        config.Name,
		Type:        config.Type,
		Value:       config.Value,
		PointsCost:  config.PointsCost,
		Status:      models.CouponAvailable,
		EarnedAt:    now,
		ExpiredAt:   now + int64(config.ValidDays)*24*60*60*1000,
		Code:        utils.GenerateCouponCode(),
		UserID:      userID,
		Description: config.Description,
		Icon:        config.Icon,
	}

	data, err := s.loadCouponData(userID)
	if err != nil {
		return nil, err
	}
	data.Coupons = append(data.Coupons, coupon)
	if err := s.store.WriteJSON(couponPath(userID), data); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// MyCoupons 查询用户优惠券，status为空或all时返回全部
// 查询时顺带将已过期的可用券标记为expired并写回
func (s *CouponService) MyCoupons(userID, status string) ([]models.Coupon, error) {
	data, err := s.loadCouponData(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	changed := false
	for i := range data.Coupons {
		if data.Coupons[i].Status == models.CouponAvailable && now > data.Coupons[i].ExpiredAt {
			data.Coupons[i].Status = models.CouponExpired
			changed = true
		}
	}
	if changed {
		if err := s.store.WriteJSON(couponPath(userID), data); err != nil {
			return nil, err
		}
	}

	if status == "" || status == "all" {
		return data.Coupons, nil
	}
	filtered := make([]models.Coupon, 0, len(data.Coupons))
	for _, c := range data.Coupons {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Use 核销优惠券
func (s *CouponService) Use(userID, couponID string) (*models.Coupon, error) {
	data, err := s.loadCouponData(userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range data.Coupons {
		if c.ID == couponID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errValidation("优惠券不存在")
	}

	coupon := &data.Coupons[idx]
	now := time.Now().UnixMilli()
	switch {
	case coupon.Status == models.CouponUsed:
		return nil, errValidation("优惠券已使用")
	case coupon.Status == models.CouponExpired || now > coupon.ExpiredAt:
		if coupon.Status == models.CouponAvailable {
			coupon.Status = models.CouponExpired
			// 过期状态写回失败不影响本次拒绝结果
			_ = s.store.WriteJSON(couponPath(userID), data)
		}
		return nil, errValidation("优惠券已过期")
	}

	coupon.Status = models.CouponUsed
	coupon.UsedAt = now
	if err := s.store.WriteJSON(couponPath(userID), data); err != nil {
		return nil, err
	}
	return coupon, nil
}
