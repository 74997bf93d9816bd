package models

// PointsRecord 积分流水记录，获取和消费共用一个结构
type PointsRecord struct {
	ID              string `json:"id"`
	Timestamp       int64  `json:"timestamp"` // 毫秒时间戳
	Amount          int    `json:"amount"`
	Source          string `json:"source,omitempty"`  // 获取来源，如"问卷"
	Purpose         string `json:"purpose,omitempty"` // 消费用途，如"兑换50元优惠券"
	TestType        string `json:"testType,omitempty"`
	TestName        string `json:"testName,omitempty"`
	RelatedRecordID string `json:"relatedRecordId,omitempty"`
	CouponID        string `json:"couponId,omitempty"`
	CouponName      string `json:"couponName,omitempty"`
	UserID          string `json:"userId"`
}

// PointsData 用户积分文档 points/<userID>.json
type PointsData struct {
	Balance int            `json:"balance"`
	Earned  []PointsRecord `json:"earned"`
	Spent   []PointsRecord `json:"spent"`
}

// 优惠券状态
const (
	CouponAvailable = "available"
	CouponUsed      = "used"
	CouponExpired   = "expired"
)

// CouponConfig 可兑换优惠券配置
type CouponConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       int    `json:"value"`
	PointsCost  int    `json:"pointsCost"`
	ValidDays   int    `json:"validDays"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CouponCatalog 固定的优惠券兑换目录
func CouponCatalog() []CouponConfig {
	return []CouponConfig{
		{ID: "coupon_50", Name: "50元优惠券", Type: "discount", Value: 50, PointsCost: 100, ValidDays: 30, Description: "可用于购买任何产品", Icon: "🎁"},
		{ID: "coupon_100", Name: "100元优惠券", Type: "discount", Value: 100, PointsCost: 200, ValidDays: 30, Description: "可用于购买任何产品", Icon: "💎"},
		{ID: "coupon_150", Name: "150元优惠券", Type: "discount", Value: 150, PointsCost: 300, ValidDays: 30, Description: "可用于购买任何产品", Icon: "👑"},
		{ID: "coupon_200", Name: "200元优惠券", Type: "discount", Value: 200, PointsCost: 400, ValidDays: 30, Description: "可用于购买任何产品", Icon: "💰"},
	}
}

// Coupon 用户持有的优惠券实例
type Coupon struct {
	ID          string `json:"id"`
	ConfigID    string `json:"configId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       int    `json:"value"`
	PointsCost  int    `json:"pointsCost"`
	Status      string `json:"status"` // available / used / expired
	EarnedAt    int64  `json:"earnedAt"`
	UsedAt      int64  `json:"usedAt,omitempty"`
	ExpiredAt   int64  `json:"expiredAt"`
	Code        string `json:"code"`
	UserID      string `json:"userId"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CouponData 用户优惠券文档 coupons/<userID>.json
type CouponData struct {
	Coupons []Coupon `json:"coupons"`
}
