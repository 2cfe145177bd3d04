// internal/services/stats_service.go
package services

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/storage"
)

// 统计文件位置（相对存储根目录）
const (
	statsSubDir   = "stats"
	statsFileName = "generation_stats.json"
)

// GenerationStats 报告生成统计
type GenerationStats struct {
	TodayReports  int            `json:"today_reports"`
	TotalReports  int            `json:"total_reports"`
	TotalExports  int            `json:"total_exports"`
	DailyStats    map[string]int `json:"daily_stats"`    // 日期 -> 生成次数
	AreaStats     map[string]int `json:"area_stats"`     // 业务领域 -> 生成次数
	CategoryStats map[string]int `json:"category_stats"` // 场景类别 -> 出现次数
	LastUpdated   time.Time      `json:"last_updated"`
}

// StatsService 统计报告生成与导出次数，脏标记批量落盘
type StatsService struct {
	storage *storage.FileStorage

	mutex       sync.Mutex
	cachedStats *GenerationStats

	// 时间段检查缓存
	lastCheckDate string
	lastCheckTime time.Time

	// 批量保存控制
	isDirty      bool
	lastSaveTime time.Time
	saveInterval time.Duration
}

// NewStatsService 创建统计服务实例
func NewStatsService(fileStorage *storage.FileStorage) *StatsService {
	service := &StatsService{
		storage:      fileStorage,
		saveInterval: 30 * time.Second,
	}

	service.startPeriodicSave()

	return service
}

// initStatsUnlocked 初始化统计数据（无锁版本）
func (s *StatsService) initStatsUnlocked() {
	// 尝试加载现有数据
	if loadedStats, err := s.loadStats(); err == nil {
		s.updateStatsForNewPeriod(loadedStats)
		s.cachedStats = loadedStats
		return
	}

	// 加载失败或文件不存在，创建新的统计数据
	s.cachedStats = newGenerationStats()

	if err := s.saveStats(s.cachedStats); err != nil {
		fmt.Printf("警告: 保存初始统计数据失败: %v\n", err)
	}
}

func newGenerationStats() *GenerationStats {
	return &GenerationStats{
		DailyStats:    make(map[string]int),
		AreaStats:     make(map[string]int),
		CategoryStats: make(map[string]int),
		LastUpdated:   time.Now(),
	}
}

// updateStatsForNewPeriod 跨天后重置当日计数
func (s *StatsService) updateStatsForNewPeriod(stats *GenerationStats) {
	now := time.Now()
	today := now.Format("2006-01-02")
	lastDate := stats.LastUpdated.Format("2006-01-02")

	if today != lastDate {
		stats.TodayReports = 0
		stats.LastUpdated = now
		if err := s.saveStats(stats); err != nil {
			fmt.Printf("警告: 更新时间段统计失败: %v\n", err)
		}
	}
}

// loadStats 从文件加载统计数据
func (s *StatsService) loadStats() (*GenerationStats, error) {
	if !s.storage.FileExists(statsSubDir, statsFileName) {
		return nil, fmt.Errorf("统计文件不存在")
	}

	var stats GenerationStats
	if err := s.storage.LoadJSONFile(statsSubDir, statsFileName, &stats); err != nil {
		return nil, err
	}

	// 确保映射已初始化
	if stats.DailyStats == nil {
		stats.DailyStats = make(map[string]int)
	}
	if stats.AreaStats == nil {
		stats.AreaStats = make(map[string]int)
	}
	if stats.CategoryStats == nil {
		stats.CategoryStats = make(map[string]int)
	}

	return &stats, nil
}

// saveStats 保存统计数据到文件
func (s *StatsService) saveStats(stats *GenerationStats) error {
	return s.storage.SaveJSONFile(statsSubDir, statsFileName, stats)
}

// GetStats 获取生成统计
func (s *StatsService) GetStats() *GenerationStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cachedStats == nil {
		s.initStatsUnlocked()
	}

	// 缓存时间段检查，减少频繁的时间比较
	if s.needsPeriodUpdate() {
		s.updateStatsForNewPeriod(s.cachedStats)
	}

	// 返回深度副本
	return s.createStatsCopy()
}

// needsPeriodUpdate 高效的时间段检查
func (s *StatsService) needsPeriodUpdate() bool {
	now := time.Now()

	// 距离上次检查不到10分钟时跳过
	if now.Sub(s.lastCheckTime) < 10*time.Minute {
		return false
	}

	s.lastCheckTime = now
	currentDate := now.Format("2006-01-02")

	needsUpdate := currentDate != s.lastCheckDate
	if needsUpdate {
		s.lastCheckDate = currentDate
	}

	return needsUpdate
}

// createStatsCopy 创建统计数据的深度副本
func (s *StatsService) createStatsCopy() *GenerationStats {
	if s.cachedStats == nil {
		return newGenerationStats()
	}

	return &GenerationStats{
		TodayReports:  s.cachedStats.TodayReports,
		TotalReports:  s.cachedStats.TotalReports,
		TotalExports:  s.cachedStats.TotalExports,
		DailyStats:    copyIntMap(s.cachedStats.DailyStats),
		AreaStats:     copyIntMap(s.cachedStats.AreaStats),
		CategoryStats: copyIntMap(s.cachedStats.CategoryStats),
		LastUpdated:   s.cachedStats.LastUpdated,
	}
}

func copyIntMap(original map[string]int) map[string]int {
	if original == nil {
		return make(map[string]int)
	}

	copied := make(map[string]int, len(original))
	maps.Copy(copied, original)
	return copied
}

// RecordReport 记录一次报告生成
func (s *StatsService) RecordReport(report *models.GeneratedReport) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cachedStats == nil {
		s.initStatsUnlocked()
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	s.cachedStats.TodayReports++
	s.cachedStats.TotalReports++
	s.cachedStats.DailyStats[today]++
	s.cachedStats.AreaStats[string(report.BusinessArea)]++
	for _, scene := range report.Scenes {
		s.cachedStats.CategoryStats[string(scene.Scene.Category)]++
	}
	s.cachedStats.LastUpdated = now

	// 标记为需要保存，但不立即保存
	s.isDirty = true

	if now.Sub(s.lastSaveTime) > s.saveInterval {
		return s.saveStatsImmediate()
	}

	return nil
}

// RecordExport 记录一次导出
func (s *StatsService) RecordExport() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cachedStats == nil {
		s.initStatsUnlocked()
	}

	s.cachedStats.TotalExports++
	s.cachedStats.LastUpdated = time.Now()
	s.isDirty = true

	if time.Since(s.lastSaveTime) > s.saveInterval {
		return s.saveStatsImmediate()
	}

	return nil
}

// saveStatsImmediate 立即保存（调用方持锁）
func (s *StatsService) saveStatsImmediate() error {
	if !s.isDirty {
		return nil
	}

	err := s.saveStats(s.cachedStats)
	if err == nil {
		s.isDirty = false
		s.lastSaveTime = time.Now()
	}
	return err
}

// startPeriodicSave 定时保存机制
func (s *StatsService) startPeriodicSave() {
	go func() {
		ticker := time.NewTicker(s.saveInterval)
		defer ticker.Stop()

		for range ticker.C {
			s.mutex.Lock()
			if s.isDirty {
				if err := s.saveStatsImmediate(); err != nil {
					fmt.Printf("警告: 定时保存统计数据失败: %v\n", err)
				}
			}
			s.mutex.Unlock()
		}
	}()
}

// ResetStats 重置统计数据（测试或管理用途）
func (s *StatsService) ResetStats() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	newStats := newGenerationStats()
	if err := s.saveStats(newStats); err != nil {
		return err
	}

	s.cachedStats = newStats
	return nil
}

// Close 关闭前保存未落盘的数据
func (s *StatsService) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isDirty {
		return s.saveStatsImmediate()
	}
	return nil
}
