package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"azring_to_go/models"
	"azring_to_go/store"
	"azring_to_go/utils"
)

// 存储中的文档路径
const (
	ConfigPath  = "lottery/config.json"
	UsersPath   = "lottery/users.json"
	WinnersPath = "lottery/winners.json"
)

// LotteryService 抽奖核心逻辑
// 每个操作都是"整体读取文档 -> 内存中修改 -> 整体写回"，无版本校验，
// 并发写入时后写者覆盖先写者（接受的风险，见DESIGN.md）
type LotteryService struct {
	store store.Store
}

// NewLotteryService 创建抽奖服务
func NewLotteryService(s store.Store) *LotteryService {
	return &LotteryService{store: s}
}

// loadUserData 读取参与者名单，文档不存在时返回空名单
func (s *LotteryService) loadUserData() (*models.UserData, error) {
	userData := &models.UserData{Users: []models.Participant{}}
	if _, err := s.store.ReadJSON(UsersPath, userData); err != nil {
		return nil, err
	}
	return userData, nil
}

// loadWinnerData 读取中奖名单，文档不存在时返回空名单
func (s *LotteryService) loadWinnerData() (*models.WinnerData, error) {
	winnerData := &models.WinnerData{Winners: []models.Participant{}, Draws: []models.DrawRecord{}}
	if _, err := s.store.ReadJSON(WinnersPath, winnerData); err != nil {
		return nil, err
	}
	return winnerData, nil
}

// GetConfig 获取活动配置，文档不存在时返回默认配置
func (s *LotteryService) GetConfig() (*models.LotteryConfig, error) {
	config := &models.LotteryConfig{}
	exists, err := s.store.ReadJSON(ConfigPath, config)
	if err != nil {
		return nil, err
	}
	if !exists {
		return models.DefaultLotteryConfig(), nil
	}
	return config, nil
}

// UpdateConfig 整体替换活动配置
func (s *LotteryService) UpdateConfig(config *models.LotteryConfig) error {
	if config == nil {
		return errValidation("缺少配置数据")
	}

	// 校验活动时间窗口：开始时间不能晚于结束时间
	startTime, errStart := utils.ParseDateTime(config.Activity.StartTime)
	endTime, errEnd := utils.ParseDateTime(config.Activity.EndTime)
	if errStart != nil || errEnd != nil {
		return errValidation("活动时间格式错误，应为YYYY-MM-DD HH:MM:SS")
	}
	if startTime.After(endTime) {
		return errValidation("活动开始时间不能晚于结束时间")
	}

	return s.store.WriteJSON(ConfigPath, config)
}

// SubmitRequest 报名请求
type SubmitRequest struct {
	Name   string
	Phone  string
	Wechat string
}

// Submit 提交抽奖报名，返回新参与者ID
func (s *LotteryService) Submit(req SubmitRequest, ip string) (string, error) {
	if req.Name == "" || req.Phone == "" {
		return "", errValidation("姓名和手机号为必填项")
	}
	if !utils.IsValidPhone(req.Phone) {
		return "", errValidation("手机号格式不正确")
	}

	// 读取配置，配置未初始化视为服务端错误
	config := &models.LotteryConfig{}
	exists, err := s.store.ReadJSON(ConfigPath, config)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errInternal("活动配置未初始化")
	}

	if config.Activity.Status != "active" {
		return "", errValidation("活动未开启或已结束")
	}

	now := time.Now()
	startTime, err := utils.ParseDateTime(config.Activity.StartTime)
	if err == nil && now.Before(startTime) {
		return "", errValidation("活动尚未开始")
	}
	endTime, err := utils.ParseDateTime(config.Activity.EndTime)
	if err == nil && now.After(endTime) {
		return "", errValidation("活动已结束")
	}

	userData, err := s.loadUserData()
	if err != nil {
		return "", err
	}

	// 防刷检查：统计时间窗口内相同IP/手机号的报名次数
	cutoff := now.Add(-time.Duration(config.AntiSpam.TimeWindow) * time.Second)
	ipCount, phoneCount := 0, 0
	for _, u := range userData.Users {
		submitTime, err := utils.ParseFlexibleTime(u.SubmitTime)
		if err != nil || !submitTime.After(cutoff) {
			continue
		}
		if u.IP == ip {
			ipCount++
		}
		if u.Phone == req.Phone {
			phoneCount++
		}
	}
	if ipCount >= config.AntiSpam.IPLimit {
		return "", errThrottled("您已参与过本期活动")
	}
	if phoneCount >= config.AntiSpam.PhoneLimit {
		return "", errThrottled("该手机号已参与过本期活动")
	}

	userID := utils.GenerateRecordID("U")
	userData.Users = append(userData.Users, models.Participant{
		ID:         userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Wechat:     req.Wechat,
		IP:         ip,
		SubmitTime: utils.FormatISOTime(now),
		Status:     models.StatusPending,
	})
	userData.LastUpdated = utils.FormatISOTime(now)

	if err := s.store.WriteJSON(UsersPath, userData); err != nil {
		return "", err
	}
	return userID, nil
}

// DrawRequest 抽奖请求
type DrawRequest struct {
	Mode          string
	PrizeLevel    string
	Count         int
	ManualUserIDs []string
}

// WinnerPublic 返回给管理端的中奖者公开字段
type WinnerPublic struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Wechat string `json:"wechat"`
}

// DrawResult 抽奖结果
type DrawResult struct {
	Draw    models.DrawRecord
	Winners []WinnerPublic
}

// Draw 执行抽奖。先写参与者名单再写中奖名单，两次写入之间无原子性保证：
// 第一次写入成功后失败会留下status=winner但中奖名单缺失的记录
func (s *LotteryService) Draw(req DrawRequest) (*DrawResult, error) {
	if req.Mode == "" || req.PrizeLevel == "" {
		return nil, errValidation("缺少必要参数")
	}

	config := &models.LotteryConfig{}
	configExists, err := s.store.ReadJSON(ConfigPath, config)
	if err != nil {
		return nil, err
	}
	userData := &models.UserData{}
	usersExists, err := s.store.ReadJSON(UsersPath, userData)
	if err != nil {
		return nil, err
	}
	if !configExists || !usersExists {
		return nil, errInternal("数据未初始化")
	}
	winnerData, err := s.loadWinnerData()
	if err != nil {
		return nil, err
	}

	prize, ok := config.Prizes[req.PrizeLevel]
	if !ok {
		return nil, errValidation("无效的奖品等级")
	}

	// 计算被选中参与者在名单中的下标
	var selectedIdx []int
	switch req.Mode {
	case models.DrawModeAuto:
		var poolIdx []int
		for i, u := range userData.Users {
			if u.Status == models.StatusPending {
				poolIdx = append(poolIdx, i)
			}
		}
		if len(poolIdx) == 0 {
			return nil, errValidation("没有可抽奖的用户")
		}

		drawCount := req.Count
		if drawCount <= 0 {
			drawCount = prize.Count
		}
		if len(poolIdx) < drawCount {
			return nil, errValidation(fmt.Sprintf("可抽奖用户不足，当前只有 %d 人", len(poolIdx)))
		}

		// Fisher-Yates洗牌后取前drawCount个，每个待抽奖用户等概率入选
		rand.Shuffle(len(poolIdx), func(i, j int) {
			poolIdx[i], poolIdx[j] = poolIdx[j], poolIdx[i]
		})
		selectedIdx = poolIdx[:drawCount]

	case models.DrawModeManual:
		if len(req.ManualUserIDs) == 0 {
			return nil, errValidation("未指定中奖用户")
		}
		requested := make(map[string]bool, len(req.ManualUserIDs))
		for _, id := range req.ManualUserIDs {
			requested[id] = true
		}
		for i, u := range userData.Users {
			if requested[u.ID] && u.Status == models.StatusPending {
				selectedIdx = append(selectedIdx, i)
			}
		}
		// 任何一个ID不存在或已抽过奖则整体拒绝
		if len(selectedIdx) != len(req.ManualUserIDs) {
			return nil, errValidation("部分用户不存在或已参与过抽奖")
		}

	default:
		return nil, errValidation("无效的抽奖模式")
	}

	now := time.Now()
	winTime := utils.FormatISOTime(now)
	drawID := utils.GenerateRecordID("D")

	drawRecord := models.DrawRecord{
		ID:         drawID,
		PrizeLevel: req.PrizeLevel,
		PrizeName:  prize.Name,
		Mode:       req.Mode,
		Count:      len(selectedIdx),
		DrawTime:   winTime,
		Winners:    make([]string, 0, len(selectedIdx)),
	}

	winners := make([]WinnerPublic, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		u := &userData.Users[idx]
		u.Status = models.StatusWinner
		u.PrizeLevel = req.PrizeLevel
		u.PrizeName = prize.Name
		u.DrawID = drawID
		u.WinTime = winTime

		drawRecord.Winners = append(drawRecord.Winners, u.ID)
		// 中奖名单保存中奖时刻的完整冗余副本
		winnerData.Winners = append(winnerData.Winners, *u)
		winners = append(winners, WinnerPublic{ID: u.ID, Name: u.Name, Phone: u.Phone, Wechat: u.Wechat})
	}
	winnerData.Draws = append(winnerData.Draws, drawRecord)

	userData.LastUpdated = utils.FormatISOTime(now)
	if err := s.store.WriteJSON(UsersPath, userData); err != nil {
		return nil, err
	}
	if err := s.store.WriteJSON(WinnersPath, winnerData); err != nil {
		return nil, err
	}

	return &DrawResult{Draw: drawRecord, Winners: winners}, nil
}

// ListQuery 参与者列表查询条件
type ListQuery struct {
	Status    string
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}

// PaginationInfo 分页信息
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
}

// ListStats 全量统计数据，不受过滤条件影响
type ListStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Winners    int `json:"winners"`
	NotWinners int `json:"notWinners"`
	TotalDraws int `json:"totalDraws"`
}

// ListResult 参与者列表查询结果
type ListResult struct {
	Users       []models.Participant `json:"users"`
	Pagination  PaginationInfo       `json:"pagination"`
	Stats       ListStats            `json:"stats"`
	LastUpdated string               `json:"lastUpdated"`
}

// List 过滤、排序并分页返回参与者列表
func (s *LotteryService) List(query ListQuery) (*ListResult, error) {
	userData, err := s.loadUserData()
	if err != nil {
		return nil, err
	}
	winnerData, err := s.loadWinnerData()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Participant, 0, len(userData.Users))
	var startFilter, endFilter time.Time
	hasStart, hasEnd := false, false
	if query.StartDate != "" {
		if t, err := utils.ParseFlexibleTime(query.StartDate); err == nil {
			startFilter, hasStart = t, true
		}
	}
	if query.EndDate != "" {
		if t, err := utils.ParseFlexibleTime(query.EndDate); err == nil {
			endFilter, hasEnd = t, true
		}
	}

	for _, u := range userData.Users {
		if query.Status != "" && u.Status != query.Status {
			continue
		}
		if hasStart || hasEnd {
			submitTime, err := utils.ParseFlexibleTime(u.SubmitTime)
			if err != nil {
				continue
			}
			// 时间范围两端均为闭区间
			if hasStart && submitTime.Before(startFilter) {
				continue
			}
			if hasEnd && submitTime.After(endFilter) {
				continue
			}
		}
		filtered = append(filtered, u)
	}

	// 按提交时间倒序
	sort.SliceStable(filtered, func(i, j int) bool {
		ti, errI := utils.ParseFlexibleTime(filtered[i].SubmitTime)
		tj, errJ := utils.ParseFlexibleTime(filtered[j].SubmitTime)
		if errI != nil || errJ != nil {
			return filtered[i].SubmitTime > filtered[j].SubmitTime
		}
		return ti.After(tj)
	})

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	currentPage := query.Page
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	startIndex := (currentPage - 1) * pageSize
	endIndex := startIndex + pageSize
	if startIndex > total {
		startIndex = total
	}
	if endIndex > total {
		endIndex = total
	}

	stats := ListStats{Total: len(userData.Users), TotalDraws: len(winnerData.Draws)}
	for _, u := range userData.Users {
		switch u.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusWinner:
			stats.Winners++
		case models.StatusNotWinner:
			stats.NotWinners++
		}
	}

	return &ListResult{
		Users: filtered[startIndex:endIndex],
		Pagination: PaginationInfo{
			CurrentPage: currentPage,
			PageSize:    pageSize,
			Total:       total,
			TotalPages:  totalPages,
		},
		Stats:       stats,
		LastUpdated: userData.LastUpdated,
	}, nil
}

// ExportParticipants 按类型过滤导出数据集，空结果返回404错误
// exportType: all 全部 / winners 仅中奖者 / pending 仅待抽奖
func (s *LotteryService) ExportParticipants(exportType string) ([]models.Participant, error) {
	userData, err := s.loadUserData()
	if err != nil {
		return nil, err
	}
	if len(userData.Users) == 0 {
		return nil, errNotFound("暂无数据")
	}

	users := userData.Users
	switch exportType {
	case "winners":
		users = filterByStatus(users, models.StatusWinner)
	case "pending":
		users = filterByStatus(users, models.StatusPending)
	}
	if len(users) == 0 {
		return nil, errNotFound("暂无符合条件的数据")
	}
	return users, nil
}

func filterByStatus(users []models.Participant, status string) []models.Participant {
	result := make([]models.Participant, 0, len(users))
	for _, u := range users {
		if u.Status == status {
			result = append(result, u)
		}
	}
	return result
}

// ExportHeaders 导出表格的固定列
var ExportHeaders = []string{"ID", "姓名", "手机号", "微信号", "提交时间", "IP地址", "状态", "奖品等级", "奖品名称", "中奖时间"}

// ExportRow 参与者记录转为导出行
func ExportRow(u models.Participant) []string {
	return []string{
		u.ID,
		u.Name,
		u.Phone,
		u.Wechat,
		u.SubmitTime,
		u.IP,
		models.StatusLabel(u.Status),
		u.PrizeLevel,
		u.PrizeName,
		u.WinTime,
	}
}

// ExportCSV 生成带UTF-8 BOM的CSV内容，确保Excel正确识别中文
func (s *LotteryService) ExportCSV(exportType string) ([]byte, error) {
	users, err := s.ExportParticipants(exportType)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")

	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeaders); err != nil {
		return nil, fmt.Errorf("写入CSV表头失败: %v", err)
	}
	for _, u := range users {
		if err := w.Write(ExportRow(u)); err != nil {
			return nil, fmt.Errorf("写入CSV数据失败: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("生成CSV失败: %v", err)
	}
	return buf.Bytes(), nil
}
