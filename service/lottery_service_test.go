package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"azring_to_go/models"
	"azring_to_go/store"
	"azring_to_go/utils"
)

// newTestService 创建基于内存存储的抽奖服务
func newTestService(t *testing.T) (*LotteryService, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	return NewLotteryService(memStore), memStore
}

// writeActiveConfig 写入一份当前处于活动期内的配置
func writeActiveConfig(t *testing.T, memStore *store.MemoryStore) *models.LotteryConfig {
	t.Helper()
	config := models.DefaultLotteryConfig()
	config.Activity.StartTime = utils.FormatDateTime(time.Now().Add(-time.Hour))
	config.Activity.EndTime = utils.FormatDateTime(time.Now().Add(time.Hour))
	if err := memStore.WriteJSON(ConfigPath, config); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return config
}

// seedUsers 写入n个待抽奖参与者，手机号和IP互不相同
func seedUsers(t *testing.T, memStore *store.MemoryStore, n int) []models.Participant {
	t.Helper()
	users := make([]models.Participant, 0, n)
	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		users = append(users, models.Participant{
			ID:         fmt.Sprintf("U%d-test%05d", base.UnixMilli(), i),
			Name:       fmt.Sprintf("用户%d", i),
			Phone:      fmt.Sprintf("138%08d", i),
			IP:         fmt.Sprintf("10.0.%d.%d", i/256, i%256),
			SubmitTime: utils.FormatISOTime(base.Add(time.Duration(i) * time.Minute)),
			Status:     models.StatusPending,
		})
	}
	userData := &models.UserData{Users: users, LastUpdated: utils.FormatISOTime(time.Now())}
	if err := memStore.WriteJSON(UsersPath, userData); err != nil {
		t.Fatalf("写入参与者名单失败: %v", err)
	}
	return users
}

// assertServiceError 断言错误为指定状态码和提示的业务错误
func assertServiceError(t *testing.T, err error, wantCode int, wantMessage string) {
	t.Helper()
	if err == nil {
		t.Fatalf("期望错误 %d %q，实际无错误", wantCode, wantMessage)
	}
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("期望业务错误，实际为 %v", err)
	}
	if serviceErr.Code != wantCode {
		t.Errorf("错误状态码期望 %d，实际 %d", wantCode, serviceErr.Code)
	}
	if wantMessage != "" && serviceErr.Message != wantMessage {
		t.Errorf("错误提示期望 %q，实际 %q", wantMessage, serviceErr.Message)
	}
}

func TestLotteryService_GetConfig(t *testing.T) {
	service, memStore := newTestService(t)

	t.Run("配置不存在时返回默认配置", func(t *testing.T) {
		config, err := service.GetConfig()
		if err != nil {
			t.Fatalf("获取配置失败: %v", err)
		}
		if config.Activity.Title != "AZ Ring 抽奖活动" {
			t.Errorf("默认活动标题错误: %q", config.Activity.Title)
		}
		if config.Prizes["first"].Count != 1 || config.Prizes["second"].Count != 5 || config.Prizes["third"].Count != 20 {
			t.Errorf("默认奖品数量错误: %+v", config.Prizes)
		}
		if config.AntiSpam.TimeWindow != 604800 {
			t.Errorf("默认防刷窗口错误: %d", config.AntiSpam.TimeWindow)
		}
	})

	t.Run("读取已保存的配置", func(t *testing.T) {
		saved := writeActiveConfig(t, memStore)
		saved.Activity.Title = "新一期活动"
		if err := memStore.WriteJSON(ConfigPath, saved); err != nil {
			t.Fatal(err)
		}

		config, err := service.GetConfig()
		if err != nil {
			t.Fatalf("获取配置失败: %v", err)
		}
		if config.Activity.Title != "新一期活动" {
			t.Errorf("活动标题期望 %q，实际 %q", "新一期活动", config.Activity.Title)
		}
	})
}

func TestLotteryService_UpdateConfig(t *testing.T) {
	service, memStore := newTestService(t)

	t.Run("缺少配置数据", func(t *testing.T) {
		assertServiceError(t, service.UpdateConfig(nil), 400, "缺少配置数据")
	})

	t.Run("开始时间晚于结束时间被拒绝", func(t *testing.T) {
		config := models.DefaultLotteryConfig()
		config.Activity.StartTime = "2025-06-01 00:00:00"
		config.Activity.EndTime = "2025-05-01 00:00:00"
		assertServiceError(t, service.UpdateConfig(config), 400, "活动开始时间不能晚于结束时间")
	})

	t.Run("时间格式错误被拒绝", func(t *testing.T) {
		config := models.DefaultLotteryConfig()
		config.Activity.StartTime = "not-a-time"
		err := service.UpdateConfig(config)
		assertServiceError(t, err, 400, "")
	})

	t.Run("合法配置写入成功", func(t *testing.T) {
		config := models.DefaultLotteryConfig()
		config.Activity.Title = "更新后的活动"
		if err := service.UpdateConfig(config); err != nil {
			t.Fatalf("更新配置失败: %v", err)
		}

		stored := &models.LotteryConfig{}
		exists, err := memStore.ReadJSON(ConfigPath, stored)
		if err != nil || !exists {
			t.Fatalf("读取配置失败: exists=%v err=%v", exists, err)
		}
		if stored.Activity.Title != "更新后的活动" {
			t.Errorf("写入的配置标题错误: %q", stored.Activity.Title)
		}
	})
}

func TestLotteryService_Submit(t *testing.T) {
	t.Run("报名成功写入待抽奖记录", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		userID, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678", Wechat: "zhangsan"}, "1.2.3.4")
		if err != nil {
			t.Fatalf("报名失败: %v", err)
		}
		if !strings.HasPrefix(userID, "U") {
			t.Errorf("参与者ID前缀错误: %q", userID)
		}

		userData := &models.UserData{}
		if _, err := memStore.ReadJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}
		if len(userData.Users) != 1 {
			t.Fatalf("参与者数量期望1，实际%d", len(userData.Users))
		}
		u := userData.Users[0]
		if u.ID != userID || u.Name != "张三" || u.Phone != "13812345678" || u.IP != "1.2.3.4" {
			t.Errorf("参与者记录错误: %+v", u)
		}
		if u.Status != models.StatusPending {
			t.Errorf("初始状态期望pending，实际%q", u.Status)
		}
		if _, err := utils.ParseFlexibleTime(u.SubmitTime); err != nil {
			t.Errorf("提交时间格式错误: %q", u.SubmitTime)
		}
	})

	t.Run("姓名或手机号缺失", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		_, err := service.Submit(SubmitRequest{Name: "", Phone: "13812345678"}, "1.2.3.4")
		assertServiceError(t, err, 400, "姓名和手机号为必填项")
	})

	t.Run("手机号格式不正确", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		for _, phone := range []string{"12812345678", "1381234567", "138123456789", "abc", "23812345678"} {
			_, err := service.Submit(SubmitRequest{Name: "张三", Phone: phone}, "1.2.3.4")
			assertServiceError(t, err, 400, "手机号格式不正确")
		}
	})

	t.Run("配置未初始化", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4")
		assertServiceError(t, err, 500, "活动配置未初始化")
	})

	t.Run("活动未开启", func(t *testing.T) {
		service, memStore := newTestService(t)
		config := writeActiveConfig(t, memStore)
		config.Activity.Status = "inactive"
		if err := memStore.WriteJSON(ConfigPath, config); err != nil {
			t.Fatal(err)
		}

		_, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4")
		assertServiceError(t, err, 400, "活动未开启或已结束")
	})

	t.Run("活动尚未开始", func(t *testing.T) {
		service, memStore := newTestService(t)
		config := writeActiveConfig(t, memStore)
		config.Activity.StartTime = utils.FormatDateTime(time.Now().Add(time.Hour))
		config.Activity.EndTime = utils.FormatDateTime(time.Now().Add(2 * time.Hour))
		if err := memStore.WriteJSON(ConfigPath, config); err != nil {
			t.Fatal(err)
		}

		_, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4")
		assertServiceError(t, err, 400, "活动尚未开始")
	})

	t.Run("活动已结束", func(t *testing.T) {
		service, memStore := newTestService(t)
		config := writeActiveConfig(t, memStore)
		config.Activity.StartTime = utils.FormatDateTime(time.Now().Add(-2 * time.Hour))
		config.Activity.EndTime = utils.FormatDateTime(time.Now().Add(-time.Hour))
		if err := memStore.WriteJSON(ConfigPath, config); err != nil {
			t.Fatal(err)
		}

		_, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4")
		assertServiceError(t, err, 400, "活动已结束")
	})

	t.Run("相同IP在窗口内重复报名被限流", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		if _, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4"); err != nil {
			t.Fatalf("首次报名失败: %v", err)
		}
		_, err := service.Submit(SubmitRequest{Name: "李四", Phone: "13987654321"}, "1.2.3.4")
		assertServiceError(t, err, 429, "您已参与过本期活动")
	})

	t.Run("相同手机号在窗口内重复报名被限流", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		if _, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4"); err != nil {
			t.Fatalf("首次报名失败: %v", err)
		}
		_, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "5.6.7.8")
		assertServiceError(t, err, 429, "该手机号已参与过本期活动")
	})

	t.Run("窗口外的历史记录不参与限流", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)

		if _, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4"); err != nil {
			t.Fatalf("首次报名失败: %v", err)
		}

		// 把已有记录的提交时间改到窗口之外
		userData := &models.UserData{}
		if _, err := memStore.ReadJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}
		userData.Users[0].SubmitTime = utils.FormatISOTime(time.Now().Add(-8 * 24 * time.Hour))
		if err := memStore.WriteJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}

		if _, err := service.Submit(SubmitRequest{Name: "张三", Phone: "13812345678"}, "1.2.3.4"); err != nil {
			t.Fatalf("窗口外记录不应触发限流: %v", err)
		}
	})
}

func TestLotteryService_Draw(t *testing.T) {
	t.Run("缺少必要参数", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.Draw(DrawRequest{Mode: "", PrizeLevel: "first"})
		assertServiceError(t, err, 400, "缺少必要参数")
	})

	t.Run("数据未初始化", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		// 参与者名单文档尚不存在
		_, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "first"})
		assertServiceError(t, err, 500, "数据未初始化")
	})

	t.Run("无效的奖品等级", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		seedUsers(t, memStore, 3)

		_, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "fourth"})
		assertServiceError(t, err, 400, "无效的奖品等级")
	})

	t.Run("无效的抽奖模式", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		seedUsers(t, memStore, 3)

		_, err := service.Draw(DrawRequest{Mode: "random", PrizeLevel: "first"})
		assertServiceError(t, err, 400, "无效的抽奖模式")
	})

	t.Run("自动抽奖默认抽取奖品配置数量", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		seedUsers(t, memStore, 10)

		// second档默认5个名额
		result, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "second"})
		if err != nil {
			t.Fatalf("抽奖失败: %v", err)
		}
		if len(result.Winners) != 5 {
			t.Fatalf("中奖人数期望5，实际%d", len(result.Winners))
		}
		if result.Draw.PrizeName != "健康大礼包" || result.Draw.Count != 5 || result.Draw.Mode != models.DrawModeAuto {
			t.Errorf("抽奖记录错误: %+v", result.Draw)
		}

		// 参与者名单中5人变为winner并写入奖品字段
		userData := &models.UserData{}
		if _, err := memStore.ReadJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}
		winnerCount := 0
		for _, u := range userData.Users {
			if u.Status == models.StatusWinner {
				winnerCount++
				if u.PrizeLevel != "second" || u.PrizeName != "健康大礼包" || u.DrawID != result.Draw.ID || u.WinTime == "" {
					t.Errorf("中奖者奖品字段错误: %+v", u)
				}
			}
		}
		if winnerCount != 5 {
			t.Errorf("名单中winner数量期望5，实际%d", winnerCount)
		}

		// 中奖名单追加冗余副本和抽奖记录
		winnerData := &models.WinnerData{}
		if _, err := memStore.ReadJSON(WinnersPath, winnerData); err != nil {
			t.Fatal(err)
		}
		if len(winnerData.Winners) != 5 || len(winnerData.Draws) != 1 {
			t.Fatalf("中奖名单期望5人1轮，实际%d人%d轮", len(winnerData.Winners), len(winnerData.Draws))
		}
		for _, w := range winnerData.Winners {
			if w.Status != models.StatusWinner {
				t.Errorf("中奖副本状态错误: %+v", w)
			}
		}
		if len(winnerData.Draws[0].Winners) != 5 {
			t.Errorf("抽奖记录中奖ID数量错误: %d", len(winnerData.Draws[0].Winners))
		}
	})

	t.Run("指定数量覆盖默认名额", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		seedUsers(t, memStore, 10)

		result, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "third", Count: 3})
		if err != nil {
			t.Fatalf("抽奖失败: %v", err)
		}
		if len(result.Winners) != 3 {
			t.Errorf("中奖人数期望3，实际%d", len(result.Winners))
		}
	})

	t.Run("没有可抽奖的用户", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		users := seedUsers(t, memStore, 2)
		userData := &models.UserData{Users: users}
		for i := range userData.Users {
			userData.Users[i].Status = models.StatusWinner
		}
		if err := memStore.WriteJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}

		_, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "first"})
		assertServiceError(t, err, 400, "没有可抽奖的用户")
	})

	t.Run("可抽奖用户不足时不修改数据", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		seedUsers(t, memStore, 3)

		_, err := service.Draw(DrawRequest{Mode: models.DrawModeAuto, PrizeLevel: "third"})
		assertServiceError(t, err, 400, "可抽奖用户不足，当前只有 3 人")

		userData := &models.UserData{}
		if _, err := memStore.ReadJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}
		for _, u := range userData.Users {
			if u.Status != models.StatusPending {
				t.Errorf("抽奖失败后状态不应改变: %+v", u)
			}
		}
	})

	t.Run("手动指定中奖者", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		users := seedUsers(t, memStore, 5)

		result, err := service.Draw(DrawRequest{
			Mode:          models.DrawModeManual,
			PrizeLevel:    "first",
			ManualUserIDs: []string{users[1].ID, users[3].ID},
		})
		if err != nil {
			t.Fatalf("手动抽奖失败: %v", err)
		}
		if len(result.Winners) != 2 {
			t.Fatalf("中奖人数期望2，实际%d", len(result.Winners))
		}
		got := map[string]bool{result.Winners[0].ID: true, result.Winners[1].ID: true}
		if !got[users[1].ID] || !got[users[3].ID] {
			t.Errorf("中奖者与指定不符: %+v", result.Winners)
		}
	})

	t.Run("手动指定包含无效用户时整体拒绝", func(t *testing.T) {
		service, memStore := newTestService(t)
		writeActiveConfig(t, memStore)
		users := seedUsers(t, memStore, 3)

		_, err := service.Draw(DrawRequest{
			Mode:          models.DrawModeManual,
			PrizeLevel:    "first",
			ManualUserIDs: []string{users[0].ID, "U0-notexist"},
		})
		assertServiceError(t, err, 400, "部分用户不存在或已参与过抽奖")

		// 整体拒绝后不应有任何状态变化
		userData := &models.UserData{}
		if _, err := memStore.ReadJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}
		for _, u := range userData.Users {
			if u.Status != models.StatusPending {
				t.Errorf("拒绝后状态不应改变: %+v", u)
			}
		}
	})
}

func TestLotteryService_List(t *testing.T) {
	t.Run("分页与边界", func(t *testing.T) {
		service, memStore := newTestService(t)
		seedUsers(t, memStore, 120)

		result, err := service.List(ListQuery{Page: 1, PageSize: 50})
		if err != nil {
			t.Fatalf("查询失败: %v", err)
		}
		if len(result.Users) != 50 {
			t.Errorf("第1页期望50条，实际%d", len(result.Users))
		}
		if result.Pagination.Total != 120 || result.Pagination.TotalPages != 3 {
			t.Errorf("分页信息错误: %+v", result.Pagination)
		}

		result, err = service.List(ListQuery{Page: 3, PageSize: 50})
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Users) != 20 {
			t.Errorf("第3页期望20条，实际%d", len(result.Users))
		}

		// 超出范围的页码被钳制到最后一页
		result, err = service.List(ListQuery{Page: 10, PageSize: 50})
		if err != nil {
			t.Fatal(err)
		}
		if result.Pagination.CurrentPage != 3 || len(result.Users) != 20 {
			t.Errorf("越界页码应钳制到第3页: %+v", result.Pagination)
		}
	})

	t.Run("空名单返回1页", func(t *testing.T) {
		service, _ := newTestService(t)
		result, err := service.List(ListQuery{})
		if err != nil {
			t.Fatal(err)
		}
		if result.Pagination.TotalPages != 1 || result.Pagination.CurrentPage != 1 {
			t.Errorf("空名单分页信息错误: %+v", result.Pagination)
		}
		if len(result.Users) != 0 {
			t.Errorf("空名单不应返回数据: %d", len(result.Users))
		}
	})

	t.Run("按提交时间倒序排列", func(t *testing.T) {
		service, memStore := newTestService(t)
		seedUsers(t, memStore, 10)

		result, err := service.List(ListQuery{})
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(result.Users); i++ {
			prev, _ := utils.ParseFlexibleTime(result.Users[i-1].SubmitTime)
			curr, _ := utils.ParseFlexibleTime(result.Users[i].SubmitTime)
			if curr.After(prev) {
				t.Fatalf("第%d条晚于前一条: %s > %s", i, result.Users[i].SubmitTime, result.Users[i-1].SubmitTime)
			}
		}
	})

	t.Run("状态过滤不影响全量统计", func(t *testing.T) {
		service, memStore := newTestService(t)
		users := seedUsers(t, memStore, 10)
		userData := &models.UserData{Users: users}
		userData.Users[0].Status = models.StatusWinner
		userData.Users[1].Status = models.StatusWinner
		userData.Users[2].Status = models.StatusNotWinner
		if err := memStore.WriteJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}

		result, err := service.List(ListQuery{Status: models.StatusWinner})
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Users) != 2 {
			t.Errorf("过滤后期望2条，实际%d", len(result.Users))
		}
		if result.Stats.Total != 10 || result.Stats.Winners != 2 || result.Stats.Pending != 7 || result.Stats.NotWinners != 1 {
			t.Errorf("全量统计错误: %+v", result.Stats)
		}
	})

	t.Run("日期范围为闭区间", func(t *testing.T) {
		service, memStore := newTestService(t)
		users := []models.Participant{
			{ID: "U1", Name: "A", Phone: "13800000001", SubmitTime: "2025-03-01T10:00:00Z", Status: models.StatusPending},
			{ID: "U2", Name: "B", Phone: "13800000002", SubmitTime: "2025-03-02T10:00:00Z", Status: models.StatusPending},
			{ID: "U3", Name: "C", Phone: "13800000003", SubmitTime: "2025-03-03T10:00:00Z", Status: models.StatusPending},
		}
		if err := memStore.WriteJSON(UsersPath, &models.UserData{Users: users}); err != nil {
			t.Fatal(err)
		}

		result, err := service.List(ListQuery{StartDate: "2025-03-02T10:00:00Z", EndDate: "2025-03-03T10:00:00Z"})
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Users) != 2 {
			t.Fatalf("闭区间过滤期望2条，实际%d", len(result.Users))
		}
	})
}

func TestLotteryService_Export(t *testing.T) {
	t.Run("无数据时返回404", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.ExportCSV("all")
		assertServiceError(t, err, 404, "暂无数据")
	})

	t.Run("过滤后无数据时返回404", func(t *testing.T) {
		service, memStore := newTestService(t)
		seedUsers(t, memStore, 3)

		_, err := service.ExportCSV("winners")
		assertServiceError(t, err, 404, "暂无符合条件的数据")
	})

	t.Run("CSV带BOM且包含表头和数据行", func(t *testing.T) {
		service, memStore := newTestService(t)
		users := seedUsers(t, memStore, 2)
		userData := &models.UserData{Users: users}
		userData.Users[0].Status = models.StatusWinner
		userData.Users[0].PrizeLevel = "first"
		userData.Users[0].PrizeName = "AZ Ring智能戒指"
		userData.Users[0].WinTime = "2025-03-01T10:00:00Z"
		if err := memStore.WriteJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}

		content, err := service.ExportCSV("all")
		if err != nil {
			t.Fatalf("导出失败: %v", err)
		}
		if !bytes.HasPrefix(content, []byte("\xef\xbb\xbf")) {
			t.Error("CSV缺少UTF-8 BOM")
		}

		lines := strings.Split(strings.TrimRight(string(content[3:]), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("期望1行表头+2行数据，实际%d行", len(lines))
		}
		if lines[0] != "ID,姓名,手机号,微信号,提交时间,IP地址,状态,奖品等级,奖品名称,中奖时间" {
			t.Errorf("表头错误: %q", lines[0])
		}
		if !strings.Contains(lines[1]+lines[2], "已中奖") || !strings.Contains(lines[1]+lines[2], "待抽奖") {
			t.Errorf("状态文案缺失: %q %q", lines[1], lines[2])
		}
	})

	t.Run("姓名包含逗号时正确转义", func(t *testing.T) {
		service, memStore := newTestService(t)
		users := []models.Participant{{
			ID: "U1", Name: "张,三", Phone: "13800000001",
			SubmitTime: "2025-03-01T10:00:00Z", Status: models.StatusPending,
		}}
		if err := memStore.WriteJSON(UsersPath, &models.UserData{Users: users}); err != nil {
			t.Fatal(err)
		}

		content, err := service.ExportCSV("all")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "\"张,三\"") {
			t.Errorf("含逗号字段未加引号: %s", content)
		}
	})

	t.Run("winners类型仅导出中奖者", func(t *testing.T) {
		service, memStore := newTestService(t)
		users := seedUsers(t, memStore, 4)
		userData := &models.UserData{Users: users}
		userData.Users[0].Status = models.StatusWinner
		if err := memStore.WriteJSON(UsersPath, userData); err != nil {
			t.Fatal(err)
		}

		exported, err := service.ExportParticipants("winners")
		if err != nil {
			t.Fatal(err)
		}
		if len(exported) != 1 || exported[0].ID != users[0].ID {
			t.Errorf("winners过滤结果错误: %+v", exported)
		}
	})
}
