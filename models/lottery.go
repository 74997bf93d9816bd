package models

// 参与者状态
const (
	StatusPending   = "pending"   // 待抽奖
	StatusWinner    = "winner"    // 已中奖
	StatusNotWinner = "notWinner" // 未中奖（保留状态，抽奖逻辑目前不会写入）
)

// 抽奖模式
const (
	DrawModeAuto   = "auto"   // 随机抽取
	DrawModeManual = "manual" // 手动指定中奖者
)

// ActivityInfo 活动信息
type ActivityInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"` // 格式 YYYY-MM-DD HH:MM:SS
	EndTime     string `json:"endTime"`
	DrawDay     string `json:"drawDay,omitempty"` // 开奖日说明，如"每周五"
	Status      string `json:"status"`            // active / inactive
}

// Prize 奖品配置
type Prize struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// FormConfig 报名表单字段配置
type FormConfig struct {
	Fields   []string `json:"fields"`
	Required []string `json:"required"`
}

// AntiSpamConfig 防刷配置，TimeWindow单位为秒
type AntiSpamConfig struct {
	IPLimit    int   `json:"ipLimit"`
	PhoneLimit int   `json:"phoneLimit"`
	TimeWindow int64 `json:"timeWindow"`
}

// LotteryConfig 抽奖活动配置文档 lottery/config.json
type LotteryConfig struct {
	Activity ActivityInfo     `json:"activity"`
	Prizes   map[string]Prize `json:"prizes"` // key为奖品等级 first/second/third
	Form     FormConfig       `json:"form"`
	AntiSpam AntiSpamConfig   `json:"antiSpam"`
}

// DefaultLotteryConfig 配置文档不存在时的默认配置
func DefaultLotteryConfig() *LotteryConfig {
	return &LotteryConfig{
		Activity: ActivityInfo{
			Title:       "AZ Ring 抽奖活动",
			Description: "参与即有机会赢取AZ Ring智能戒指等豪礼！",
			StartTime:   "2025-01-20 00:00:00",
			EndTime:     "2025-12-31 23:59:59",
			DrawDay:     "每周五",
			Status:      "active",
		},
		Prizes: map[string]Prize{
			"first":  {Name: "AZ Ring智能戒指", Count: 1, Description: "价值999元"},
			"second": {Name: "健康大礼包", Count: 5, Description: "价值299元"},
			"third":  {Name: "精美礼品", Count: 20, Description: "价值99元"},
		},
		Form: FormConfig{
			Fields:   []string{"name", "phone", "wechat"},
			Required: []string{"name", "phone"},
		},
		AntiSpam: AntiSpamConfig{
			IPLimit:    1,
			PhoneLimit: 1,
			TimeWindow: 604800,
		},
	}
}

// Participant 参与者记录，中奖后写入奖品相关字段
type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Wechat     string `json:"wechat"`
	IP         string `json:"ip"`
	SubmitTime string `json:"submitTime"` // ISO格式时间
	Status     string `json:"status"`
	PrizeLevel string `json:"prizeLevel,omitempty"`
	PrizeName  string `json:"prizeName,omitempty"`
	DrawID     string `json:"drawId,omitempty"`
	WinTime    string `json:"winTime,omitempty"`
}

// UserData 参与者名单文档 lottery/users.json
type UserData struct {
	Users       []Participant `json:"users"`
	LastUpdated string        `json:"lastUpdated"`
}

// DrawRecord 抽奖记录，创建后不再修改
type DrawRecord struct {
	ID         string   `json:"id"`
	PrizeLevel string   `json:"prizeLevel"`
	PrizeName  string   `json:"prizeName"`
	Mode       string   `json:"mode"`
	Count      int      `json:"count"`
	DrawTime   string   `json:"drawTime"`
	Winners    []string `json:"winners"` // 中奖参与者ID列表
}

// WinnerData 中奖名单文档 lottery/winners.json
// Winners为中奖时刻参与者记录的冗余副本，只追加不修改
type WinnerData struct {
	Winners []Participant `json:"winners"`
	Draws   []DrawRecord  `json:"draws"`
}

// StatusLabel 状态的中文展示文案
func StatusLabel(status string) string {
	switch status {
	case StatusWinner:
		return "已中奖"
	case StatusPending:
		return "待抽奖"
	default:
		return "未中奖"
	}
}
