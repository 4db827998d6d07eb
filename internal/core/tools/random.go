package tools

import (
	"context"
	"fmt"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/pkg/common"
)

// RandomRecipe 取得一筆隨機食譜
// 上游保證恰好回傳一筆，空清單視為 NotFound
func (s *Service) RandomRecipe(ctx context.Context) (*Result, error) {
	meals, err := s.client.Random(ctx)
	if err != nil {
		return nil, err
	}

	if len(meals) == 0 {
		common.LogWarn("隨機查詢回傳空清單")
		return nil, fmt.Errorf("random lookup returned no recipe: %w", common.ErrRecipeNotFound)
	}

	recipe, err := mealdb.Normalize(meals[0])
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Drew random recipe %q with %d ingredients and %d steps.",
		recipe.Name, len(recipe.Ingredients), len(recipe.Instructions))
	return recipeResult(text, recipe), nil
}
