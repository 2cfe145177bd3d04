package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
)

func newTestFlowService(seed int64) (*FlowService, *ReportService) {
	reportService := NewReportService(catalog.Default(), rng.NewSeeded(seed))
	return NewFlowService(reportService, NewFormatService()), reportService
}

func TestFlowLifecycle(t *testing.T) {
	flow, reports := newTestFlowService(1)
	session := reports.CreateSession(models.UserFacets{})
	total := session.Report.TotalPages()

	t.Run("初始状态为未开始", func(t *testing.T) {
		status, err := flow.Status(session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.FlowNotStarted, status.State)
		assert.Zero(t, status.PageIndex)
		assert.Equal(t, total, status.TotalPages)
	})

	t.Run("未开始时不能翻页", func(t *testing.T) {
		_, err := flow.Next(session.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("开始后落在第0页", func(t *testing.T) {
		status, err := flow.Start(session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.FlowViewing, status.State)
		assert.Zero(t, status.PageIndex)
	})

	t.Run("重复开始是空操作", func(t *testing.T) {
		_, err := flow.Next(session.ID)
		require.NoError(t, err)

		status, err := flow.Start(session.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, status.PageIndex)
	})

	t.Run("前进在最后一页停住", func(t *testing.T) {
		var status *FlowStatus
		var err error
		for i := 0; i < total+5; i++ {
			status, err = flow.Next(session.ID)
			require.NoError(t, err)
		}
		assert.Equal(t, total-1, status.PageIndex)
	})

	t.Run("后退在第0页停住", func(t *testing.T) {
		var status *FlowStatus
		var err error
		for i := 0; i < total+5; i++ {
			status, err = flow.Back(session.ID)
			require.NoError(t, err)
		}
		assert.Zero(t, status.PageIndex)
	})
}

func TestFlowRestart(t *testing.T) {
	flow, reports := newTestFlowService(2)
	session := reports.CreateSession(models.UserFacets{})

	_, err := flow.Start(session.ID)
	require.NoError(t, err)
	_, err = flow.Next(session.ID)
	require.NoError(t, err)

	status, err := flow.Restart(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowNotStarted, status.State)
	assert.Zero(t, status.PageIndex)
	assert.Equal(t, 2, status.ReportKey)
}

func TestFlowResetsWhenReportKeyChanges(t *testing.T) {
	flow, reports := newTestFlowService(3)
	session := reports.CreateSession(models.UserFacets{})

	_, err := flow.Start(session.ID)
	require.NoError(t, err)
	_, err = flow.Next(session.ID)
	require.NoError(t, err)

	// 绕过流转服务直接重新生成报告，旧的流转状态必须作废
	_, err = reports.RestartSession(session.ID)
	require.NoError(t, err)

	status, err := flow.Status(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowNotStarted, status.State)
	assert.Zero(t, status.PageIndex)
	assert.Equal(t, 2, status.ReportKey)
}

func TestFlowUnknownSession(t *testing.T) {
	flow, _ := newTestFlowService(4)

	_, err := flow.Status("missing")
	assert.True(t, apperrors.IsNotFoundError(err))
	_, err = flow.Start("missing")
	assert.True(t, apperrors.IsNotFoundError(err))
	_, err = flow.Next("missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestFlowNotifier(t *testing.T) {
	flow, reports := newTestFlowService(5)
	session := reports.CreateSession(models.UserFacets{})

	var events []string
	flow.SetNotifier(func(sessionID string, event map[string]interface{}) {
		assert.Equal(t, session.ID, sessionID)
		events = append(events, event["type"].(string))
	})

	_, err := flow.Start(session.ID)
	require.NoError(t, err)
	_, err = flow.Next(session.ID)
	require.NoError(t, err)
	_, err = flow.Restart(session.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"flow_started", "page_changed", "flow_restarted"}, events)
}

func TestBuildPage(t *testing.T) {
	flow, reports := newTestFlowService(6)
	session := reports.CreateSession(models.UserFacets{})
	report := session.Report
	total := report.TotalPages()

	t.Run("第0页是身份页", func(t *testing.T) {
		page, err := flow.BuildPage(session.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, models.PageIdentity, page.Kind)
		require.NotNil(t, page.WorkDays)
		assert.Equal(t, report.WorkDays, *page.WorkDays)
		require.NotNil(t, page.FullRestWeekends)
		require.NotNil(t, page.TrustInNextYear)
	})

	t.Run("场景页带类别和格式化文案", func(t *testing.T) {
		for i := 1; i <= len(report.Scenes); i++ {
			page, err := flow.BuildPage(session.ID, i)
			require.NoError(t, err)
			assert.Equal(t, models.PageScene, page.Kind)
			assert.NotEmpty(t, page.CategoryName)
			assert.NotEmpty(t, page.CategoryIcon)
			assert.NotEmpty(t, page.MainText)
			assert.NotContains(t, page.MainText, "{number}")
			assert.NotContains(t, page.MainText, "{time}")
		}
	})

	t.Run("尾部三页依次是结论、分享、推广", func(t *testing.T) {
		page, err := flow.BuildPage(session.ID, len(report.Scenes)+1)
		require.NoError(t, err)
		assert.Equal(t, models.PageConclusion, page.Kind)
		assert.Equal(t, report.Conclusion.MainText, page.MainText)

		page, err = flow.BuildPage(session.ID, len(report.Scenes)+2)
		require.NoError(t, err)
		assert.Equal(t, models.PageShare, page.Kind)
		assert.Equal(t, report.SystemNarration.Text, page.Narration)

		page, err = flow.BuildPage(session.ID, total-1)
		require.NoError(t, err)
		assert.Equal(t, models.PagePromote, page.Kind)
	})

	t.Run("页索引越界", func(t *testing.T) {
		_, err := flow.BuildPage(session.ID, -1)
		assert.True(t, apperrors.IsValidationError(err))
		_, err = flow.BuildPage(session.ID, total)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestBuildPages(t *testing.T) {
	flow, reports := newTestFlowService(7)
	session := reports.CreateSession(models.UserFacets{})
	total := session.Report.TotalPages()

	pages, err := flow.BuildPages(session.ID)
	require.NoError(t, err)
	require.Len(t, pages, total)
	assert.Equal(t, total, 1+len(session.Report.Scenes)+3)

	for i, page := range pages {
		assert.Equal(t, i, page.Index)
	}
	assert.Equal(t, models.PageIdentity, pages[0].Kind)
	assert.Equal(t, models.PagePromote, pages[total-1].Kind)
}
