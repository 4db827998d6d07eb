package tools

import (
	"context"
	"fmt"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/pkg/common"

	"go.uber.org/zap"
)

// LookupRecipe 依名稱查詢食譜
// 名稱比對（不分大小寫、子字串）完全交給上游 API，這裡不做本地比對
// 上游回傳多筆時取第一筆；查無資料回傳 NotFound，不以空食譜代替
func (s *Service) LookupRecipe(ctx context.Context, name string) (*Result, error) {
	meals, err := s.client.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		common.LogInfo("查無符合的食譜",
			zap.String("name", name),
		)
		return nil, fmt.Errorf("no recipe matches %q: %w", name, common.ErrRecipeNotFound)
	}

	recipe, err := mealdb.Normalize(meals[0])
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Found recipe %q with %d ingredients and %d steps.",
		recipe.Name, len(recipe.Ingredients), len(recipe.Instructions))
	return recipeResult(text, recipe), nil
}
