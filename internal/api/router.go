// internal/api/router.go
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	"github.com/cat-xierluo/falvren2025/internal/config"
	"github.com/cat-xierluo/falvren2025/internal/di"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/services"
)

// SetupRouter 配置HTTP路由
func SetupRouter() (*gin.Engine, error) {
	// 获取配置
	cfg := config.GetCurrentConfig()

	// 获取依赖注入容器
	container := di.GetContainer()

	// 只从容器获取服务，不再创建新实例
	reportService, ok := container.Get("report").(*services.ReportService)
	if !ok {
		return nil, fmt.Errorf("报告服务未正确初始化")
	}

	flowService, ok := container.Get("flow").(*services.FlowService)
	if !ok {
		return nil, fmt.Errorf("流转服务未正确初始化")
	}

	cardService, ok := container.Get("card").(*services.CardService)
	if !ok {
		return nil, fmt.Errorf("卡片服务未正确初始化")
	}

	exportService, ok := container.Get("export").(*services.ExportService)
	if !ok {
		return nil, fmt.Errorf("导出服务未正确初始化")
	}

	statsService, ok := container.Get("stats").(*services.StatsService)
	if !ok {
		return nil, fmt.Errorf("统计服务未正确初始化")
	}

	cat, ok := container.Get("catalog").(*catalog.Catalog)
	if !ok {
		return nil, fmt.Errorf("内容库未正确初始化")
	}

	randSource, ok := container.Get("rand").(rng.Source)
	if !ok {
		return nil, fmt.Errorf("随机源未正确初始化")
	}

	// 创建API处理器
	handler := NewHandler(
		reportService,
		flowService,
		cardService,
		exportService,
		statsService,
		cat,
		randSource,
	)

	// 流转事件接入WebSocket广播
	flowService.SetNotifier(BroadcastFlowEvent)

	// 创建路由
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 启用CORS
	r.Use(corsMiddleware())

	// 请求ID，用于响应追踪
	r.Use(requestIDMiddleware())

	// 静态文件服务：前端资源与导出的图片
	r.Static("/static", cfg.StaticDir)
	r.Static("/exports", cfg.ExportDir)

	// 健康检查
	r.GET("/healthz", handler.HealthCheck)

	// WebSocket 支持
	r.GET("/ws/reports/:id", handler.ReportWebSocket)

	// ===============================
	// API路由组
	// ===============================
	api := r.Group("/api")
	api.Use(DefaultRateLimit())
	{
		// ===============================
		// 报告会话相关路由
		// ===============================
		reportsGroup := api.Group("/reports")
		{
			reportsGroup.POST("", GenerateRateLimit(), handler.CreateReport)
			reportsGroup.GET("/:id", handler.GetReport)
			reportsGroup.POST("/:id/restart", GenerateRateLimit(), handler.RestartReport)
			reportsGroup.DELETE("/:id", handler.DeleteReport)

			// 分页内容
			reportsGroup.GET("/:id/pages", handler.GetReportPages)
			reportsGroup.GET("/:id/pages/:index", handler.GetReportPage)

			// 页面流转
			flowGroup := reportsGroup.Group("/:id/flow")
			{
				flowGroup.GET("", handler.GetFlowStatus)
				flowGroup.POST("/start", handler.StartFlow)
				flowGroup.POST("/next", handler.NextPage)
				flowGroup.POST("/back", handler.BackPage)
			}

			// 导出与卡片定制
			reportsGroup.POST("/:id/export", ExportRateLimit(), handler.ExportReportPage)
			reportsGroup.GET("/:id/card", handler.GetCard)
			reportsGroup.POST("/:id/card", handler.UpdateCard)
			reportsGroup.POST("/:id/card/qr", UploadRateLimit(), handler.UploadQRImage)
		}

		// ===============================
		// 内容库相关路由
		// ===============================
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/scenes", handler.GetCatalogScenes)
			catalogGroup.GET("/cities", handler.GetCatalogCities)
			catalogGroup.GET("/narrations", handler.GetCatalogNarrations)
			catalogGroup.GET("/conclusions", handler.GetCatalogConclusions)
			catalogGroup.GET("/phrases", handler.GetCatalogPhrases)
		}

		// ===============================
		// 标语相关路由
		// ===============================
		taglinesGroup := api.Group("/taglines")
		{
			taglinesGroup.GET("/random", handler.GetRandomTagline)
			taglinesGroup.GET("/daily", handler.GetDailyTagline)
			taglinesGroup.GET("/user/:user_id", handler.GetUserTagline)
		}

		// ===============================
		// 文件上传
		// ===============================
		api.POST("/upload", UploadRateLimit(), handler.UploadQRImage)

		// ===============================
		// 统计
		// ===============================
		api.GET("/stats", handler.GetStats)

		// WebSocket 管理路由（调试用）
		wsGroup := api.Group("/ws")
		{
			wsGroup.GET("/status", handler.GetWebSocketStatus)
			wsGroup.POST("/cleanup", handler.CleanupWebSocketConnections)
		}
	}

	return r, nil
}

// corsMiddleware 实现跨域资源共享
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware 为每个请求分配追踪ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
