package main

import (
	"fmt"
	"os"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/core/tools"
	"recipe-tools/internal/infrastructure/config"
	mcpHandlers "recipe-tools/internal/mcp/handlers"
	"recipe-tools/internal/pkg/common"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdio 傳輸模式下 stdout 保留給協議本身，日誌改寫入 stderr
	if err := common.InitStderrLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("mealdb_base_url", cfg.MealDB.BaseURL),
		zap.String("mealdb_api_key", config.MaskAPIKey(cfg.MealDB.APIKey)),
	)

	// 初始化外部 API 客戶端與工具服務
	client := mealdb.NewClient(cfg.MealDB)
	service := tools.NewService(client)

	// 創建 MCP 服務器並注册工具
	s := server.NewMCPServer(
		cfg.App.Name,
		cfg.App.Version,
		server.WithToolCapabilities(true),
	)
	mcpHandlers.NewRecipeToolHandler(service).RegisterTools(s)

	common.LogInfo("啟動 MCP 服務器",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("transport", "stdio"),
	)

	if err := server.ServeStdio(s); err != nil {
		common.LogError("MCP server error", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("MCP server exited")
}
