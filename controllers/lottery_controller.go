package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"azring_to_go/config"
	"azring_to_go/models"
	"azring_to_go/service"
	"azring_to_go/service/msg"
	"azring_to_go/service/sms"
	"azring_to_go/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// LotteryController 抽奖活动控制器
type LotteryController struct {
	service *service.LotteryService
	cfg     config.Config
}

// NewLotteryController 创建抽奖控制器
func NewLotteryController(cfg config.Config) *LotteryController {
	return &LotteryController{
		service: service.NewLotteryService(store.Data),
		cfg:     cfg,
	}
}

// respondError 将业务错误映射为对应状态码的JSON响应，其他错误统一返回500
func respondError(c *gin.Context, err error) {
	var serviceErr *service.ServiceError
	if errors.As(err, &serviceErr) {
		c.JSON(serviceErr.Code, gin.H{"success": false, "error": serviceErr.Message})
		return
	}
	log.Printf("服务内部错误: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "服务器错误", "message": err.Error()})
}

// GetConfig 获取活动配置（公开接口），配置不存在时返回默认配置
func (lc *LotteryController) GetConfig(c *gin.Context) {
	lotteryConfig, err := lc.service.GetConfig()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "config": lotteryConfig})
}

// UpdateConfigRequest 更新配置请求结构体
type UpdateConfigRequest struct {
	Config   *models.LotteryConfig `json:"config"`
	Password string                `json:"password"`
}

// UpdateConfig 整体替换活动配置
func (lc *LotteryController) UpdateConfig(c *gin.Context) {
	var request UpdateConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请求参数错误", "detail": msg.TranslateError(err)})
		return
	}
	if request.Config == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少配置数据"})
		return
	}

	if err := lc.service.UpdateConfig(request.Config); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "配置已更新", "config": request.Config})
}

// SubmitRequest 报名请求结构体
type SubmitRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Wechat string `json:"wechat"`
}

// Submit 用户提交抽奖报名
func (lc *LotteryController) Submit(c *gin.Context) {
	var request SubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "姓名和手机号为必填项", "detail": msg.TranslateError(err)})
		return
	}

	userID, err := lc.service.Submit(service.SubmitRequest{
		Name:   request.Name,
		Phone:  request.Phone,
		Wechat: request.Wechat,
	}, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "提交成功！祝您好运！",
		"userId":  userID,
	})
}

// DrawRequest 抽奖请求结构体
type DrawRequest struct {
	Mode          string   `json:"mode" binding:"required"`
	PrizeLevel    string   `json:"prizeLevel" binding:"required"`
	Count         int      `json:"count"`
	ManualUserIDs []string `json:"manualUserIds"`
}

// Draw 执行抽奖（需要管理员权限）
func (lc *LotteryController) Draw(c *gin.Context) {
	var request DrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少必要参数", "detail": msg.TranslateError(err)})
		return
	}

	result, err := lc.service.Draw(service.DrawRequest{
		Mode:          request.Mode,
		PrizeLevel:    request.PrizeLevel,
		Count:         request.Count,
		ManualUserIDs: request.ManualUserIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// 配置了短信时通知中奖者，通知失败不影响抽奖结果
	if sms.Enabled(lc.cfg.SMS) {
		for _, winner := range result.Winners {
			if err := sms.SendPrizeNotice(lc.cfg.SMS, winner.Phone, result.Draw.PrizeName); err != nil {
				log.Printf("中奖短信发送失败 phone=%s: %v", winner.Phone, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("成功抽取 %d 位中奖者", len(result.Winners)),
		"draw":    result.Draw,
		"winners": result.Winners,
	})
}

// List 分页查询参与者列表（需要管理员权限）
func (lc *LotteryController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	result, err := lc.service.List(service.ListQuery{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"users":       result.Users,
		"pagination":  result.Pagination,
		"stats":       result.Stats,
		"lastUpdated": result.LastUpdated,
	})
}

// Export 导出CSV（需要管理员权限），带UTF-8 BOM
func (lc *LotteryController) Export(c *gin.Context) {
	exportType := c.DefaultQuery("type", "all")

	content, err := lc.service.ExportCSV(exportType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="lottery-export-%d.csv"`, time.Now().UnixMilli()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportExcel 导出Excel（需要管理员权限）
func (lc *LotteryController) ExportExcel(c *gin.Context) {
	exportType := c.DefaultQuery("type", "all")

	users, err := lc.service.ExportParticipants(exportType)
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("关闭Excel文件失败: %v", err)
		}
	}()

	const sheet = "抽奖数据"
	f.SetSheetName("Sheet1", sheet)

	// 设置表头
	for i, header := range service.ExportHeaders {
		cell := string(rune('A'+i)) + "1"
		f.SetCellValue(sheet, cell, header)
	}

	// 填充数据
	for i, u := range users {
		row := strconv.Itoa(i + 2)
		for j, value := range service.ExportRow(u) {
			f.SetCellValue(sheet, string(rune('A'+j))+row, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="lottery-export-%d.xlsx"`, time.Now().UnixMilli()))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("写出Excel失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "导出失败"})
	}
}
