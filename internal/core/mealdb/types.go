package mealdb

import (
	"encoding/json"
	"fmt"
)

// MaxIngredientSlots TheMealDB 每筆食譜固定帶 20 組食材/份量欄位
const MaxIngredientSlots = 20

// IngredientPair 一組食材與份量
type IngredientPair struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// RawMeal 外部 API 回傳的單筆食譜原始紀錄
// 上游以 strIngredient1..strIngredient20 / strMeasure1..strMeasure20 這種
// 數字後綴鍵名區分欄位，解析時先合併為固定長度的配對陣列，
// 讓後續處理不必再用字串鍵名查值
type RawMeal struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Thumbnail    string
	Instructions string
	Ingredients  [MaxIngredientSlots]IngredientPair

	// 記錄鍵是否存在，normalize 需要區分「缺欄位」與「空值」
	hasName         bool
	hasInstructions bool
}

// UnmarshalJSON 從上游的扁平鍵值物件填入 RawMeal
// 上游所有值都是字串或 null，null 一律視為空字串
func (m *RawMeal) UnmarshalJSON(data []byte) error {
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	get := func(key string) string {
		if v, ok := fields[key]; ok && v != nil {
			return *v
		}
		return ""
	}

	_, m.hasName = fields["strMeal"]
	_, m.hasInstructions = fields["strInstructions"]

	m.ID = get("idMeal")
	m.Name = get("strMeal")
	m.Category = get("strCategory")
	m.Area = get("strArea")
	m.Thumbnail = get("strMealThumb")
	m.Instructions = get("strInstructions")

	for i := 1; i <= MaxIngredientSlots; i++ {
		m.Ingredients[i-1] = IngredientPair{
			Ingredient: get(fmt.Sprintf("strIngredient%d", i)),
			Measure:    get(fmt.Sprintf("strMeasure%d", i)),
		}
	}

	return nil
}

// Recipe 正規化後的食譜紀錄
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// MealSummary 篩選結果的輕量紀錄，欄位直接照抄上游
type MealSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnailUrl"`
}
