package controllers

import (
	"backend/services/enrich"
	"backend/services/mail"
	"backend/utils"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// EnrichResponse 富集接口响应结构
type EnrichResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EnrichController 富集管理接口
type EnrichController struct {
	service *enrich.Service
	mail    *mail.MailService

	mu          sync.Mutex
	running     bool
	lastSummary *enrich.RunSummary
}

// NewEnrichController 创建富集控制器
func NewEnrichController(service *enrich.Service, mailService *mail.MailService) *EnrichController {
	return &EnrichController{
		service: service,
		mail:    mailService,
	}
}

// @Summary 触发完整富集运行
// @Description 异步执行孤儿入库+补全扫描两个阶段，同一时间只允许一次运行
// @Tags 富集管理
// @Produce json
// @Success 202 {object} EnrichResponse
// @Failure 409 {object} EnrichResponse
// @Router /admin/enrich/run [post]
func (ec *EnrichController) RunEnrichment(c *gin.Context) {
	ec.mu.Lock()
	if ec.running {
		ec.mu.Unlock()
		c.JSON(http.StatusConflict, EnrichResponse{
			Code:    http.StatusConflict,
			Message: "已有富集任务在运行中",
		})
		return
	}
	ec.running = true
	ec.mu.Unlock()

	go func() {
		defer func() {
			ec.mu.Lock()
			ec.running = false
			ec.mu.Unlock()
		}()

		summary, err := ec.service.Run()
		if err != nil {
			utils.LogError("富集任务执行失败", err)
			return
		}

		ec.mu.Lock()
		ec.lastSummary = summary
		ec.mu.Unlock()

		if err := ec.mail.SendRunSummary(summary); err != nil {
			utils.LogError("发送运行摘要邮件失败", err)
		}
	}()

	c.JSON(http.StatusAccepted, EnrichResponse{
		Code:    http.StatusAccepted,
		Message: "富集任务已启动",
	})
}

// parseIDList 解析逗号/空格分隔的ID列表，非数字片段忽略
func parseIDList(raw string) []int64 {
	var ids []int64
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if id, err := strconv.ParseInt(tok, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// @Summary 定向补全指定ID
// @Description 同步补全显式给出的游戏ID列表，跳过枚举阶段
// @Tags 富集管理
// @Accept json
// @Produce json
// @Param ids query string true "逗号分隔的游戏ID列表"
// @Success 200 {object} EnrichResponse
// @Failure 400 {object} EnrichResponse
// @Router /admin/enrich/ids [post]
func (ec *EnrichController) EnrichByIDs(c *gin.Context) {
	ids := parseIDList(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, EnrichResponse{
			Code:    http.StatusBadRequest,
			Message: "未提供有效的数字ID",
		})
		return
	}

	summary := ec.service.RunIDs(ids)

	ec.mu.Lock()
	ec.lastSummary = summary
	ec.mu.Unlock()

	c.JSON(http.StatusOK, EnrichResponse{
		Code:    http.StatusOK,
		Message: "定向补全完成",
		Data:    summary,
	})
}

// @Summary 查询富集状态
// @Description 返回是否有任务在运行以及最近一次运行的摘要
// @Tags 富集管理
// @Produce json
// @Success 200 {object} EnrichResponse
// @Router /admin/enrich/status [get]
func (ec *EnrichController) GetEnrichmentStatus(c *gin.Context) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	c.JSON(http.StatusOK, EnrichResponse{
		Code:    http.StatusOK,
		Message: "获取富集状态成功",
		Data: gin.H{
			"running":      ec.running,
			"last_summary": ec.lastSummary,
		},
	})
}
