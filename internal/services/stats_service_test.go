package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/storage"
)

func newTestStatsService(t *testing.T) (*StatsService, *storage.FileStorage) {
	t.Helper()
	fileStorage, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	svc := NewStatsService(fileStorage)
	t.Cleanup(func() { svc.Close() })
	return svc, fileStorage
}

func TestRecordReport(t *testing.T) {
	svc, _ := newTestStatsService(t)
	engine := newTestReportService(1)

	report := engine.GenerateReport(models.UserFacets{
		BusinessArea: models.BusinessLitigation,
	})

	require.NoError(t, svc.RecordReport(report))
	require.NoError(t, svc.RecordReport(report))

	stats := svc.GetStats()
	assert.Equal(t, 2, stats.TodayReports)
	assert.Equal(t, 2, stats.TotalReports)
	assert.Equal(t, 2, stats.AreaStats[string(models.BusinessLitigation)])

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, 2, stats.DailyStats[today])

	// 每个选中场景的类别都被计数
	total := 0
	for _, n := range stats.CategoryStats {
		total += n
	}
	assert.Equal(t, 2*len(report.Scenes), total)
}

func TestRecordExport(t *testing.T) {
	svc, _ := newTestStatsService(t)

	require.NoError(t, svc.RecordExport())
	require.NoError(t, svc.RecordExport())
	require.NoError(t, svc.RecordExport())

	stats := svc.GetStats()
	assert.Equal(t, 3, stats.TotalExports)
	assert.Zero(t, stats.TotalReports)
}

func TestStatsPersistAcrossRestart(t *testing.T) {
	fileStorage, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	engine := newTestReportService(2)
	report := engine.GenerateReport(models.UserFacets{})

	first := NewStatsService(fileStorage)
	require.NoError(t, first.RecordReport(report))
	require.NoError(t, first.Close())

	second := NewStatsService(fileStorage)
	defer second.Close()

	stats := second.GetStats()
	assert.Equal(t, 1, stats.TotalReports)
	assert.Equal(t, 1, stats.AreaStats[string(report.BusinessArea)])
}

func TestGetStatsReturnsCopy(t *testing.T) {
	svc, _ := newTestStatsService(t)
	engine := newTestReportService(3)
	require.NoError(t, svc.RecordReport(engine.GenerateReport(models.UserFacets{})))

	stats := svc.GetStats()
	stats.TotalReports = 999
	stats.AreaStats["random"] = 999

	fresh := svc.GetStats()
	assert.Equal(t, 1, fresh.TotalReports)
	assert.NotEqual(t, 999, fresh.AreaStats["random"])
}

func TestResetStats(t *testing.T) {
	svc, _ := newTestStatsService(t)
	engine := newTestReportService(4)
	require.NoError(t, svc.RecordReport(engine.GenerateReport(models.UserFacets{})))
	require.NoError(t, svc.RecordExport())

	require.NoError(t, svc.ResetStats())

	stats := svc.GetStats()
	assert.Zero(t, stats.TotalReports)
	assert.Zero(t, stats.TotalExports)
	assert.Empty(t, stats.DailyStats)
}
