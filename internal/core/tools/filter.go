package tools

import (
	"context"
	"fmt"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/core/ui"
	"recipe-tools/internal/pkg/common"

	"go.uber.org/zap"
)

// filterTableColumns 篩選結果表格的固定欄位
var filterTableColumns = []ui.TableColumn{
	{Key: "id", Header: "ID", Width: 1},
	{Key: "name", Header: "Name", Width: 2},
	{Key: "thumbnailUrl", Header: "Thumbnail", Width: 1, AsImage: true},
}

// FilterRecipes 依維度篩選食譜
// 與名稱查詢不同，查無資料不是錯誤：回傳空清單與零列表格
func (s *Service) FilterRecipes(ctx context.Context, filterType mealdb.FilterType, value string) (*Result, error) {
	summaries, err := s.client.FilterBy(ctx, filterType, value)
	if err != nil {
		return nil, err
	}

	common.LogInfo("篩選完成",
		zap.String("filter_type", string(filterType)),
		zap.String("filter_value", value),
		zap.Int("matches", len(summaries)),
	)

	rows := make([]map[string]string, 0, len(summaries))
	for _, item := range summaries {
		rows = append(rows, map[string]string{
			"id":           item.ID,
			"name":         item.Name,
			"thumbnailUrl": item.Thumbnail,
		})
	}

	title := fmt.Sprintf("Recipes filtered by %s: %s", filterType, value)
	text := fmt.Sprintf("Found %d recipes filtered by %s %q.", len(summaries), filterType, value)

	return &Result{
		Text: text,
		Data: summaries,
		UI:   ui.CardWithTable(title, text, filterTableColumns, rows),
	}, nil
}
