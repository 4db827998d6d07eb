package handlers

import (
	"context"
	"strings"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/core/tools"
	"recipe-tools/internal/pkg/common"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// RecipeToolHandler 食譜工具處理器
type RecipeToolHandler struct {
	svc *tools.Service
}

// NewRecipeToolHandler 創建 RecipeToolHandler
func NewRecipeToolHandler(svc *tools.Service) *RecipeToolHandler {
	return &RecipeToolHandler{
		svc: svc,
	}
}

// RegisterTools 注册所有食譜工具到 Server
func (h *RecipeToolHandler) RegisterTools(s *server.MCPServer) {
	// 注册 recipe_lookup 工具
	lookupTool := mcp.NewTool(tools.ToolRecipeLookup,
		mcp.WithDescription("依名稱查詢食譜，回傳正規化的食材與步驟（比對由上游 API 處理）"),
		mcp.WithString("name", mcp.Required(), mcp.Description("食譜名稱")),
	)
	s.AddTool(lookupTool, h.handleLookup)

	// 注册 recipe_random 工具（無輸入參數）
	randomTool := mcp.NewTool(tools.ToolRecipeRandom,
		mcp.WithDescription("取得一筆隨機食譜"),
	)
	s.AddTool(randomTool, h.handleRandom)

	// 注册 recipe_filter 工具
	filterTool := mcp.NewTool(tools.ToolRecipeFilter,
		mcp.WithDescription("依食材、分類或地區篩選食譜，回傳輕量清單（可能為空）"),
		mcp.WithString("filter_type", mcp.Required(),
			mcp.Description("篩選維度"),
			mcp.Enum(
				string(mealdb.FilterByIngredient),
				string(mealdb.FilterByCategory),
				string(mealdb.FilterByArea),
			),
		),
		mcp.WithString("filter_value", mcp.Required(), mcp.Description("篩選值，例如 chicken、Seafood、Canadian")),
	)
	s.AddTool(filterTool, h.handleFilter)
}

// arguments 取出參數物件，mcp-go server 收到的 Arguments 通常是 map[string]interface{}
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// resultToJSON 將工具結果序列化為 MCP 回應
func resultToJSON(result *tools.Result) (*mcp.CallToolResult, error) {
	payload, err := common.ToJSON(result)
	if err != nil {
		return mcp.NewToolResultError("failed to serialize result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(payload), nil
}

// handleLookup 處理依名稱查詢
func (h *RecipeToolHandler) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	name, ok := args["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		common.LogError("recipe_lookup missing name")
		return mcp.NewToolResultError("name is required"), nil
	}

	common.LogInfo("recipe_lookup start", zap.String("name", name))

	result, err := h.svc.LookupRecipe(ctx, name)
	if err != nil {
		common.LogError("recipe_lookup failed", zap.Error(err), zap.String("name", name))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultToJSON(result)
}

// handleRandom 處理隨機食譜
func (h *RecipeToolHandler) handleRandom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	common.LogInfo("recipe_random start")

	result, err := h.svc.RandomRecipe(ctx)
	if err != nil {
		common.LogError("recipe_random failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultToJSON(result)
}

// handleFilter 處理篩選查詢
func (h *RecipeToolHandler) handleFilter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	rawType, ok := args["filter_type"].(string)
	if !ok || strings.TrimSpace(rawType) == "" {
		common.LogError("recipe_filter missing filter_type")
		return mcp.NewToolResultError("filter_type is required"), nil
	}

	value, ok := args["filter_value"].(string)
	if !ok || strings.TrimSpace(value) == "" {
		common.LogError("recipe_filter missing filter_value")
		return mcp.NewToolResultError("filter_value is required"), nil
	}

	filterType, err := mealdb.ParseFilterType(rawType)
	if err != nil {
		common.LogError("recipe_filter invalid filter_type", zap.String("filter_type", rawType))
		return mcp.NewToolResultError(err.Error()), nil
	}

	common.LogInfo("recipe_filter start",
		zap.String("filter_type", rawType),
		zap.String("filter_value", value),
	)

	result, err := h.svc.FilterRecipes(ctx, filterType, value)
	if err != nil {
		common.LogError("recipe_filter failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultToJSON(result)
}
