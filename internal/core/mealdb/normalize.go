package mealdb

import (
	"fmt"
	"strings"

	"recipe-tools/internal/pkg/common"
)

// Normalize 將外部原始紀錄轉換為正規化食譜
// 名稱或作法欄位缺失時回傳 MalformedRecord，由呼叫端決定呈現方式
func Normalize(raw RawMeal) (*Recipe, error) {
	// 名稱鍵缺失或空白一律視為缺欄位
	if !raw.hasName || strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("record has no name field: %w", common.ErrMalformedRecord)
	}
	if !raw.hasInstructions {
		return nil, fmt.Errorf("record has no instructions field: %w", common.ErrMalformedRecord)
	}

	// 依欄位索引順序合併食材與份量，空的食材欄位直接略過
	// 份量允許為空字串，維持「<食材> - <份量>」格式不變
	ingredients := make([]string, 0, MaxIngredientSlots)
	for _, pair := range raw.Ingredients {
		if strings.TrimSpace(pair.Ingredient) == "" {
			continue
		}
		ingredients = append(ingredients, fmt.Sprintf("%s - %s", pair.Ingredient, pair.Measure))
	}

	// 作法逐行拆開，去掉空白行，行序不變
	lines := strings.Split(raw.Instructions, "\n")
	instructions := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		instructions = append(instructions, line)
	}

	return &Recipe{
		Name:         raw.Name,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}
