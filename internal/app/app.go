// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	"github.com/cat-xierluo/falvren2025/internal/config"
	"github.com/cat-xierluo/falvren2025/internal/di"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/services"
	"github.com/cat-xierluo/falvren2025/internal/storage"
	"github.com/cat-xierluo/falvren2025/internal/utils"
)

// App 应用单例，持有停止信号
type App struct {
	stopChan chan struct{}
}

var (
	instance *App
	once     sync.Once
)

// GetApp 获取应用实例
func GetApp() *App {
	once.Do(func() {
		instance = &App{
			stopChan: make(chan struct{}),
		}
	})
	return instance
}

// Stop 发出停止信号
func (a *App) Stop() {
	close(a.stopChan)
}

// Done 返回停止信号通道
func (a *App) Done() <-chan struct{} {
	return a.stopChan
}

// InitServices 按依赖顺序初始化所有服务并注册到容器。
// 顺序：存储 -> 内容库 -> 随机源 -> 统计 -> 报告 -> 格式化 -> 流转 -> 卡片 -> 导出
func InitServices() error {
	cfg := config.GetCurrentConfig()
	container := di.GetContainer()
	logger := utils.GetLogger()

	// 1. 文件存储
	fileStorage, err := storage.NewFileStorage(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("初始化文件存储失败: %w", err)
	}
	container.Register("storage", fileStorage)

	// 2. 内容库：启动时校验一次，拒绝不一致的内容
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("内容库校验失败: %w", err)
	}
	container.Register("catalog", cat)
	logger.Info("内容库加载完成", map[string]interface{}{
		"scenes":      len(cat.Scenes),
		"narrations":  len(cat.Narrations),
		"conclusions": len(cat.Conclusions),
		"cities":      len(cat.AvailableCities),
	})

	// 3. 随机源
	randSource := rng.New()
	container.Register("rand", randSource)

	// 4. 统计服务
	statsService := services.NewStatsService(fileStorage)
	container.Register("stats", statsService)

	// 5. 报告生成引擎与会话管理
	reportService := services.NewReportService(cat, randSource)
	container.Register("report", reportService)

	// 6. 模板格式化
	formatService := services.NewFormatService()
	container.Register("format", formatService)

	// 7. 页面流转控制器
	flowService := services.NewFlowService(reportService, formatService)
	container.Register("flow", flowService)

	// 8. 分享卡片定制
	cardService := services.NewCardService(reportService, fileStorage, cfg.MaxUploadBytes)
	container.Register("card", cardService)

	// 9. 图片导出管线
	exportService, err := services.NewExportService(
		reportService, flowService, cardService,
		cat, randSource, fileStorage,
		cfg.ExportDir, cfg.AppURL, cfg.FontPath,
	)
	if err != nil {
		return fmt.Errorf("初始化导出服务失败: %w", err)
	}
	container.Register("export", exportService)

	return nil
}

// ShutdownServices 关闭需要落盘的服务
func ShutdownServices() {
	container := di.GetContainer()

	if statsService, ok := container.Get("stats").(*services.StatsService); ok {
		if err := statsService.Close(); err != nil {
			utils.GetLogger().Warn("关闭统计服务失败", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
