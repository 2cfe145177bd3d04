// internal/api/handlers.go
package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/services"
)

// Handler 处理API请求
type Handler struct {
	ReportService    *services.ReportService // 报告生成与会话
	FlowService      *services.FlowService   // 页面流转
	CardService      *services.CardService   // 分享卡片定制
	ExportService    *services.ExportService // 图片导出
	StatsService     *services.StatsService  // 统计服务
	Catalog          *catalog.Catalog        // 内容库
	Rand             rng.Source              // 随机源
	WebSocketHandler *WebSocketHandler       // WebSocket 处理器
	Response         *ResponseHelper         // 响应助手

	startedAt time.Time
}

// NewHandler 创建API处理器
func NewHandler(
	reportService *services.ReportService,
	flowService *services.FlowService,
	cardService *services.CardService,
	exportService *services.ExportService,
	statsService *services.StatsService,
	cat *catalog.Catalog,
	src rng.Source,
) *Handler {
	return &Handler{
		ReportService:    reportService,
		FlowService:      flowService,
		CardService:      cardService,
		ExportService:    exportService,
		StatsService:     statsService,
		Catalog:          cat,
		Rand:             src,
		WebSocketHandler: NewWebSocketHandler(reportService, flowService),
		Response:         NewResponseHelper(),
		startedAt:        time.Now(),
	}
}

// CreateReportRequest 生成报告的请求结构
type CreateReportRequest struct {
	City         string `json:"city"`          // 城市，空或"随机"表示随机
	Gender       string `json:"gender"`        // male/female/random
	BusinessArea string `json:"business_area"` // litigation/non_litigation/random
}

// ExportPageRequest 导出页面的请求结构
type ExportPageRequest struct {
	PageIndex int `json:"page_index"`
}

// APIResponse 标准API响应格式
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"` // 用于调试和追踪
}

// APIError 标准错误格式
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ------------------------------------------------
// ReportWebSocket 处理报告会话 WebSocket 连接
func (h *Handler) ReportWebSocket(c *gin.Context) {
	h.WebSocketHandler.ReportWebSocket(c)
}

// GetWebSocketStatus 获取 WebSocket 连接状态（调试用）
func (h *Handler) GetWebSocketStatus(c *gin.Context) {
	status := wsManager.GetStatus()
	status["ping_timeout_seconds"] = int(wsManager.pingTimeout.Seconds())
	status["timestamp"] = time.Now().Format(time.RFC3339)

	c.JSON(http.StatusOK, status)
}

// CleanupWebSocketConnections 手动触发连接清理（调试用）
func (h *Handler) CleanupWebSocketConnections(c *gin.Context) {
	wsManager.cleanupExpiredConnections()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "连接清理已执行",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ========================================
// 报告会话处理器
// ========================================

// CreateReport 生成报告并建立会话
func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.Response.BadRequest(c, "请求格式错误", err.Error())
			return
		}
	}

	facets, err := parseFacets(req)
	if err != nil {
		h.Response.BadRequest(c, err.Error())
		return
	}

	session := h.ReportService.CreateSession(facets)

	// 统计失败不影响主流程
	_ = h.StatsService.RecordReport(session.Report)

	h.Response.Created(c, session, "报告生成成功")
}

// 自定义城市名的长度上限，与分享卡片的展示名称一致
const maxCityNameRunes = 20

// parseFacets 校验并转换生成维度
func parseFacets(req CreateReportRequest) (models.UserFacets, error) {
	city := strings.TrimSpace(req.City)
	if utf8.RuneCountInString(city) > maxCityNameRunes {
		return models.UserFacets{}, fmt.Errorf("城市名称超过 %d 个字符", maxCityNameRunes)
	}
	facets := models.UserFacets{City: city}

	switch req.Gender {
	case "", "random":
		facets.Gender = models.GenderRandom
	case "male":
		facets.Gender = models.GenderMale
	case "female":
		facets.Gender = models.GenderFemale
	default:
		return facets, fmt.Errorf("未知的性别选项: %s", req.Gender)
	}

	switch req.BusinessArea {
	case "", "random":
		facets.BusinessArea = models.BusinessRandom
	case "litigation":
		facets.BusinessArea = models.BusinessLitigation
	case "non_litigation":
		facets.BusinessArea = models.BusinessNonLitigation
	default:
		return facets, fmt.Errorf("未知的业务领域: %s", req.BusinessArea)
	}

	return facets, nil
}

// GetReport 查询报告会话
func (h *Handler) GetReport(c *gin.Context) {
	session, err := h.ReportService.GetSession(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	h.Response.Success(c, session)
}

// RestartReport 用原有维度重新生成报告
func (h *Handler) RestartReport(c *gin.Context) {
	status, err := h.FlowService.Restart(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	session, err := h.ReportService.GetSession(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	_ = h.StatsService.RecordReport(session.Report)

	h.Response.Success(c, gin.H{
		"session": session,
		"flow":    status,
	}, "报告已重新生成")
}

// DeleteReport 销毁报告会话及其定制内容
func (h *Handler) DeleteReport(c *gin.Context) {
	sessionID := c.Param("id")

	if err := h.ReportService.DropSession(sessionID); err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	h.FlowService.Drop(sessionID)
	h.CardService.Drop(sessionID)

	h.Response.Success(c, gin.H{"session_id": sessionID}, "会话已销毁")
}

// ========================================
// 页面流转处理器
// ========================================

// GetReportPage 查询格式化后的单页内容
func (h *Handler) GetReportPage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Response.BadRequest(c, "页索引必须是整数", c.Param("index"))
		return
	}

	page, buildErr := h.FlowService.BuildPage(c.Param("id"), index)
	if buildErr != nil {
		h.Response.FromAppError(c, buildErr)
		return
	}

	h.Response.Success(c, page)
}

// GetReportPages 查询整份报告的全部分页
func (h *Handler) GetReportPages(c *gin.Context) {
	pages, err := h.FlowService.BuildPages(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	h.Response.Success(c, gin.H{
		"pages": pages,
		"total": len(pages),
	})
}

// StartFlow 开始浏览报告
func (h *Handler) StartFlow(c *gin.Context) {
	h.flowAction(c, h.FlowService.Start)
}

// NextPage 前进一页
func (h *Handler) NextPage(c *gin.Context) {
	h.flowAction(c, h.FlowService.Next)
}

// BackPage 后退一页
func (h *Handler) BackPage(c *gin.Context) {
	h.flowAction(c, h.FlowService.Back)
}

// GetFlowStatus 查询流转状态
func (h *Handler) GetFlowStatus(c *gin.Context) {
	h.flowAction(c, h.FlowService.Status)
}

func (h *Handler) flowAction(c *gin.Context, action func(string) (*services.FlowStatus, error)) {
	status, err := action(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	h.Response.Success(c, status)
}

// ========================================
// 导出功能处理器
// ========================================

// ExportReportPage 把指定页导出为PNG图片
func (h *Handler) ExportReportPage(c *gin.Context) {
	var req ExportPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误", err.Error())
		return
	}

	result, err := h.ExportService.ExportPage(c.Param("id"), req.PageIndex)
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	_ = h.StatsService.RecordExport()

	h.Response.Success(c, result, "导出成功")
}

// ========================================
// 分享卡片处理器
// ========================================

// UpdateCard 更新分享卡片的展示名称与标语，缺省字段保持不变
func (h *Handler) UpdateCard(c *gin.Context) {
	var req struct {
		DisplayName *string `json:"display_name"`
		Tagline     *string `json:"tagline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误", err.Error())
		return
	}

	sessionID := c.Param("id")

	var card *models.ShareCard
	var err error

	if req.DisplayName != nil {
		card, err = h.CardService.SetDisplayName(sessionID, *req.DisplayName)
		if err != nil {
			h.Response.FromAppError(c, err)
			return
		}
	}
	if req.Tagline != nil {
		card, err = h.CardService.SetTagline(sessionID, *req.Tagline)
		if err != nil {
			h.Response.FromAppError(c, err)
			return
		}
	}
	if card == nil {
		card, err = h.CardService.Card(sessionID)
		if err != nil {
			h.Response.FromAppError(c, err)
			return
		}
	}

	h.Response.Success(c, card, "卡片已更新")
}

// GetCard 查询分享卡片定制
func (h *Handler) GetCard(c *gin.Context) {
	card, err := h.CardService.Card(c.Param("id"))
	if err != nil {
		h.Response.FromAppError(c, err)
		return
	}

	h.Response.Success(c, card)
}

// UploadQRImage 上传联系二维码图片
func (h *Handler) UploadQRImage(c *gin.Context) {
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = c.Param("id")
	}
	if sessionID == "" {
		h.Response.BadRequest(c, "缺少会话ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Response.Error(c, http.StatusBadRequest, ErrorFileUploadFailed, "缺少上传文件", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Response.Error(c, http.StatusBadRequest, ErrorFileUploadFailed, "读取上传文件失败", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Response.Error(c, http.StatusBadRequest, ErrorFileUploadFailed, "读取上传文件失败", err.Error())
		return
	}

	card, saveErr := h.CardService.SaveQRImage(sessionID, fileHeader.Filename, data)
	if saveErr != nil {
		h.Response.FromAppError(c, saveErr)
		return
	}

	h.Response.Success(c, card, "二维码上传成功")
}

// ========================================
// 内容库处理器
// ========================================

// GetCatalogScenes 查询场景库，支持按类别过滤
func (h *Handler) GetCatalogScenes(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		h.Response.Success(c, gin.H{
			"scenes": h.Catalog.Scenes,
			"total":  len(h.Catalog.Scenes),
		})
		return
	}

	if !models.IsValidCategory(models.SceneCategory(category)) {
		h.Response.BadRequest(c, "未知的场景类别", category)
		return
	}

	scenes := h.Catalog.ScenesByCategory(models.SceneCategory(category))
	h.Response.Success(c, gin.H{
		"scenes": scenes,
		"total":  len(scenes),
	})
}

// GetCatalogCities 查询支持的城市列表
func (h *Handler) GetCatalogCities(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"cities": h.Catalog.AvailableCities,
		"total":  len(h.Catalog.AvailableCities),
	})
}

// GetCatalogNarrations 查询系统旁白池
func (h *Handler) GetCatalogNarrations(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"narrations": h.Catalog.Narrations,
		"total":      len(h.Catalog.Narrations),
	})
}

// GetCatalogConclusions 查询年终结论池
func (h *Handler) GetCatalogConclusions(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"conclusions": h.Catalog.Conclusions,
		"total":       len(h.Catalog.Conclusions),
	})
}

// GetCatalogPhrases 查询高频行业用语
func (h *Handler) GetCatalogPhrases(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"phrases": h.Catalog.HighFrequencyPhrases,
		"total":   len(h.Catalog.HighFrequencyPhrases),
	})
}

// ========================================
// 标语处理器
// ========================================

// GetRandomTagline 随机取一条作者标语
func (h *Handler) GetRandomTagline(c *gin.Context) {
	h.Response.Success(c, gin.H{"tagline": h.Catalog.RandomTagline(h.Rand)})
}

// GetDailyTagline 取当天固定的标语
func (h *Handler) GetDailyTagline(c *gin.Context) {
	h.Response.Success(c, gin.H{"tagline": h.Catalog.DailyTagline(time.Now())})
}

// GetUserTagline 取指定用户固定的标语
func (h *Handler) GetUserTagline(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		h.Response.BadRequest(c, "缺少用户ID")
		return
	}
	h.Response.Success(c, gin.H{
		"user_id": userID,
		"tagline": h.Catalog.UserTagline(userID),
	})
}

// ========================================
// 统计与健康检查
// ========================================

// GetStats 查询生成统计
func (h *Handler) GetStats(c *gin.Context) {
	h.Response.Success(c, h.StatsService.GetStats())
}

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"sessions":       h.ReportService.SessionCount(),
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}
