// Package tools 實作對外暴露的三個食譜工具
// 每次調用都是獨立的工作單元：一次外部請求、一次轉換、一次組裝，
// 不共享狀態、不快取、不重試
package tools

import (
	"fmt"
	"strings"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/core/ui"
)

// Result 工具調用結果
// Data 依工具而定：*mealdb.Recipe 或 []mealdb.MealSummary
type Result struct {
	Text string        `json:"text"`
	Data interface{}   `json:"data"`
	UI   ui.Descriptor `json:"ui"`
}

// Service 食譜工具服務
type Service struct {
	client *mealdb.Client
}

// NewService 創建食譜工具服務
func NewService(client *mealdb.Client) *Service {
	return &Service{
		client: client,
	}
}

// recipeCardContent 組卡片內文：食材清單加編號步驟
func recipeCardContent(recipe *mealdb.Recipe) string {
	var sb strings.Builder

	sb.WriteString("Ingredients:\n")
	for _, ing := range recipe.Ingredients {
		sb.WriteString(fmt.Sprintf("- %s\n", ing))
	}

	sb.WriteString("\nInstructions:\n")
	for i, step := range recipe.Instructions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	return sb.String()
}

// recipeResult 單筆正規化食譜的共用組裝
func recipeResult(text string, recipe *mealdb.Recipe) *Result {
	return &Result{
		Text: text,
		Data: recipe,
		UI:   ui.Card(recipe.Name, recipeCardContent(recipe)),
	}
}
