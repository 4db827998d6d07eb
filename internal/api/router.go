package api

import (
	"context"
	"net/http"
	"time"

	"recipe-tools/internal/api/handlers/health"
	toolsHandler "recipe-tools/internal/api/handlers/tools"
	"recipe-tools/internal/api/middleware"
	"recipe-tools/internal/core/mealdb"
	coreTools "recipe-tools/internal/core/tools"
	"recipe-tools/internal/infrastructure/config"
	"recipe-tools/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置（單次工具調用只含一次外部請求）
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)，工具參數都是小型 JSON 物件
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Agent-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.String("mealdb_base_url", cfg.MealDB.BaseURL),
		zap.Duration("mealdb_timeout", cfg.MealDB.Timeout),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化外部 API 客戶端與工具服務
	client := mealdb.NewClient(cfg.MealDB)
	service := coreTools.NewService(client)
	registry := coreTools.NewDefaultRegistry(service)

	common.LogInfo("Tool registry initialized",
		zap.Int("tools", len(registry.List())),
	)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		// 創建新的請求上下文
		c.Request = c.Request.WithContext(ctx)

		// 設置配置
		c.Set("config", cfg)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := toolsHandler.NewHandler(registry)

		// 工具列表與調用
		toolGroup := api.Group("/tools")
		{
			toolGroup.GET("", handler.HandleListTools)
			toolGroup.POST("/:name/invoke", handler.HandleInvokeTool)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
