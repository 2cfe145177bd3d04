// internal/services/flow_service.go
package services

import (
	"fmt"
	"sync"

	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
)

// FlowNotifier 页面流转事件回调，由API层接上WebSocket广播
type FlowNotifier func(sessionID string, event map[string]interface{})

// flowEntry 单个会话的流转状态
type flowEntry struct {
	State     models.FlowState
	PageIndex int
	ReportKey int
}

// FlowService 页面流转控制器。
// 每个会话从未开始进入浏览态后在 [0, total-1] 之间前后翻页，
// 重新生成报告会把流转拉回未开始态。
type FlowService struct {
	reportService *ReportService
	formatService *FormatService

	mu       sync.Mutex
	flows    map[string]*flowEntry
	notifier FlowNotifier
}

// NewFlowService 创建页面流转服务
func NewFlowService(reportService *ReportService, formatService *FormatService) *FlowService {
	return &FlowService{
		reportService: reportService,
		formatService: formatService,
		flows:         make(map[string]*flowEntry),
	}
}

// SetNotifier 注册流转事件回调
func (s *FlowService) SetNotifier(notifier FlowNotifier) {
	s.notifier = notifier
}

// FlowStatus 对外暴露的流转状态
type FlowStatus struct {
	SessionID  string           `json:"session_id"`
	State      models.FlowState `json:"state"`
	PageIndex  int              `json:"page_index"`
	TotalPages int              `json:"total_pages"`
	ReportKey  int              `json:"report_key"`
}

// entryFor 取出会话的流转状态，报告键变化时重置为未开始
func (s *FlowService) entryFor(session *models.ReportSession) *flowEntry {
	entry, exists := s.flows[session.ID]
	if !exists || entry.ReportKey != session.ReportKey {
		entry = &flowEntry{
			State:     models.FlowNotStarted,
			PageIndex: 0,
			ReportKey: session.ReportKey,
		}
		s.flows[session.ID] = entry
	}
	return entry
}

// Status 查询当前流转状态
func (s *FlowService) Status(sessionID string) (*FlowStatus, error) {
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entryFor(session)
	return s.statusLocked(session, entry), nil
}

// Start 从未开始进入浏览态，落在第0页；已在浏览态时为空操作
func (s *FlowService) Start(sessionID string) (*FlowStatus, error) {
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry := s.entryFor(session)
	if entry.State == models.FlowNotStarted {
		entry.State = models.FlowViewing
		entry.PageIndex = 0
	}
	status := s.statusLocked(session, entry)
	s.mu.Unlock()

	s.notify(sessionID, "flow_started", status)
	return status, nil
}

// Next 前进一页，最后一页时停住
func (s *FlowService) Next(sessionID string) (*FlowStatus, error) {
	return s.step(sessionID, +1)
}

// Back 后退一页，第0页时停住
func (s *FlowService) Back(sessionID string) (*FlowStatus, error) {
	return s.step(sessionID, -1)
}

func (s *FlowService) step(sessionID string, delta int) (*FlowStatus, error) {
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry := s.entryFor(session)
	if entry.State != models.FlowViewing {
		s.mu.Unlock()
		return nil, apperrors.NewConflictError("报告浏览尚未开始", nil)
	}

	total := session.Report.TotalPages()
	next := entry.PageIndex + delta
	if next < 0 {
		next = 0
	}
	if next > total-1 {
		next = total - 1
	}
	entry.PageIndex = next
	status := s.statusLocked(session, entry)
	s.mu.Unlock()

	s.notify(sessionID, "page_changed", status)
	return status, nil
}

// Restart 重新生成报告并重置流转
func (s *FlowService) Restart(sessionID string) (*FlowStatus, error) {
	session, err := s.reportService.RestartSession(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry := &flowEntry{
		State:     models.FlowNotStarted,
		PageIndex: 0,
		ReportKey: session.ReportKey,
	}
	s.flows[session.ID] = entry
	status := s.statusLocked(session, entry)
	s.mu.Unlock()

	s.notify(sessionID, "flow_restarted", status)
	return status, nil
}

// Drop 清理会话的流转状态
func (s *FlowService) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.flows, sessionID)
	s.mu.Unlock()
}

func (s *FlowService) statusLocked(session *models.ReportSession, entry *flowEntry) *FlowStatus {
	return &FlowStatus{
		SessionID:  session.ID,
		State:      entry.State,
		PageIndex:  entry.PageIndex,
		TotalPages: session.Report.TotalPages(),
		ReportKey:  entry.ReportKey,
	}
}

func (s *FlowService) notify(sessionID, event string, status *FlowStatus) {
	if s.notifier == nil {
		return
	}
	s.notifier(sessionID, map[string]interface{}{
		"type":        event,
		"session_id":  sessionID,
		"state":       string(status.State),
		"page_index":  status.PageIndex,
		"total_pages": status.TotalPages,
		"report_key":  status.ReportKey,
	})
}

// ========== 分页内容 ==========

// BuildPage 把页索引映射为格式化后的单页内容。
// 页面顺序：身份页、场景页、结论页、分享页、推广页。
func (s *FlowService) BuildPage(sessionID string, index int) (*models.Page, error) {
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	report := session.Report
	total := report.TotalPages()
	if index < 0 || index >= total {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("页索引越界: %d，合法区间 [0, %d]", index, total-1), nil)
	}

	page := &models.Page{Index: index}

	switch {
	case index == 0:
		page.Kind = models.PageIdentity
		page.WorkDays = &report.WorkDays
		page.FullRestWeekends = &report.FullRestWeekends
		page.TrustInNextYear = &report.TrustInNextYear

	case index <= len(report.Scenes):
		generated := &report.Scenes[index-1]
		page.Kind = models.PageScene
		page.Category = generated.Scene.Category
		page.CategoryName = models.CategoryName(generated.Scene.Category)
		page.CategoryIcon = models.CategoryIcon(generated.Scene.Category)
		page.MainText = s.formatService.FormatMainText(generated)
		page.Subtext = s.formatService.FormatSubtext(generated)
		page.SoulText = s.formatService.FormatSoulText(generated)

	case index == len(report.Scenes)+1:
		page.Kind = models.PageConclusion
		page.MainText = report.Conclusion.MainText
		page.Subtext = report.Conclusion.SubText

	case index == len(report.Scenes)+2:
		page.Kind = models.PageShare
		page.MainText = report.Conclusion.MainText
		page.Subtext = report.Conclusion.SubText
		page.Narration = report.SystemNarration.Text

	default:
		page.Kind = models.PagePromote
	}

	return page, nil
}

// BuildPages 返回整份报告的全部分页
func (s *FlowService) BuildPages(sessionID string) ([]*models.Page, error) {
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	total := session.Report.TotalPages()
	pages := make([]*models.Page, 0, total)
	for i := 0; i < total; i++ {
		page, err := s.BuildPage(sessionID, i)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
