package tools

import (
	"context"

	"recipe-tools/internal/core/mealdb"
)

// 工具名稱
const (
	ToolRecipeLookup = "recipe_lookup"
	ToolRecipeRandom = "recipe_random"
	ToolRecipeFilter = "recipe_filter"
)

// PricingFree 固定的非金錢計價註記
const PricingFree = "free"

// NewDefaultRegistry 創建並註冊三個食譜工具的註冊表
func NewDefaultRegistry(svc *Service) *Registry {
	r := NewRegistry()

	r.RegisterTool(Info{
		Descriptor: Descriptor{
			Name:        ToolRecipeLookup,
			Description: "依名稱查詢食譜，回傳正規化的食材與步驟",
			Pricing:     PricingFree,
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"minLength":   1,
						"description": "食譜名稱，由上游 API 做子字串比對",
					},
				},
				"required":             []interface{}{"name"},
				"additionalProperties": false,
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, inv Invocation) (*Result, error) {
			name, _ := args["name"].(string)
			return svc.LookupRecipe(ctx, name)
		},
	})

	r.RegisterTool(Info{
		Descriptor: Descriptor{
			Name:        ToolRecipeRandom,
			Description: "取得一筆隨機食譜",
			Pricing:     PricingFree,
			InputSchema: map[string]interface{}{
				"type":                 "object",
				"properties":           map[string]interface{}{},
				"additionalProperties": false,
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, inv Invocation) (*Result, error) {
			return svc.RandomRecipe(ctx)
		},
	})

	r.RegisterTool(Info{
		Descriptor: Descriptor{
			Name:        ToolRecipeFilter,
			Description: "依食材、分類或地區篩選食譜，回傳輕量清單",
			Pricing:     PricingFree,
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filter_type": map[string]interface{}{
						"type": "string",
						"enum": []interface{}{
							string(mealdb.FilterByIngredient),
							string(mealdb.FilterByCategory),
							string(mealdb.FilterByArea),
						},
						"description": "篩選維度",
					},
					"filter_value": map[string]interface{}{
						"type":        "string",
						"minLength":   1,
						"description": "篩選值，例如 chicken、Seafood、Canadian",
					},
				},
				"required":             []interface{}{"filter_type", "filter_value"},
				"additionalProperties": false,
			},
		},
		Handler: func(ctx context.Context, args map[string]interface{}, inv Invocation) (*Result, error) {
			rawType, _ := args["filter_type"].(string)
			value, _ := args["filter_value"].(string)

			// schema 已限制列舉值，這裡只做型別轉換
			filterType, err := mealdb.ParseFilterType(rawType)
			if err != nil {
				return nil, err
			}
			return svc.FilterRecipes(ctx, filterType, value)
		},
	})

	return r
}
