package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-tools/internal/infrastructure/config"
	"recipe-tools/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// FilterType 篩選維度
type FilterType string

const (
	FilterByIngredient FilterType = "ingredient"
	FilterByCategory   FilterType = "category"
	FilterByArea       FilterType = "area"
)

// ParseFilterType 驗證並轉換篩選維度字串
func ParseFilterType(s string) (FilterType, error) {
	switch FilterType(s) {
	case FilterByIngredient, FilterByCategory, FilterByArea:
		return FilterType(s), nil
	default:
		return "", fmt.Errorf("filter type %q: %w", s, common.ErrInvalidFilterType)
	}
}

// queryParam 對應上游 filter.php 的查詢參數名
func (t FilterType) queryParam() string {
	switch t {
	case FilterByIngredient:
		return "i"
	case FilterByCategory:
		return "c"
	default:
		return "a"
	}
}

// Client TheMealDB API 客戶端
type Client struct {
	http *resty.Client
}

// NewClient 創建 TheMealDB 客戶端
// API key 是路徑的一部分：<base_url>/<api_key>/search.php
func NewClient(cfg config.MealDBConfig) *Client {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.APIKey)).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http: client,
	}
}

// mealListResponse 上游回應固定把清單放在 meals 鍵下
// 查無資料時 meals 為 null，解析後即為空切片
type mealListResponse struct {
	Meals []RawMeal `json:"meals"`
}

// filterRow filter.php 回傳的輕量列
type filterRow struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

type filterListResponse struct {
	Meals []filterRow `json:"meals"`
}

// SearchByName 以名稱搜尋食譜，大小寫與子字串比對皆由上游處理
func (c *Client) SearchByName(ctx context.Context, name string) ([]RawMeal, error) {
	return c.fetchMeals(ctx, "/search.php", map[string]string{"s": name})
}

// Random 取得一筆隨機食譜，上游保證回傳恰好一筆
func (c *Client) Random(ctx context.Context) ([]RawMeal, error) {
	return c.fetchMeals(ctx, "/random.php", nil)
}

// FilterBy 依維度篩選食譜，回傳輕量紀錄清單（可能為空）
func (c *Client) FilterBy(ctx context.Context, filterType FilterType, value string) ([]MealSummary, error) {
	body, err := c.get(ctx, "/filter.php", map[string]string{filterType.queryParam(): value})
	if err != nil {
		return nil, err
	}

	var result filterListResponse
	if err := common.ParseJSONBytes(body, &result); err != nil {
		return nil, fmt.Errorf("unexpected response body: %v: %w", err, common.ErrUpstreamUnavailable)
	}

	summaries := make([]MealSummary, 0, len(result.Meals))
	for _, row := range result.Meals {
		summaries = append(summaries, MealSummary{
			ID:        row.ID,
			Name:      row.Name,
			Thumbnail: row.Thumbnail,
		})
	}
	return summaries, nil
}

// fetchMeals 發送查詢並解析完整食譜清單
func (c *Client) fetchMeals(ctx context.Context, path string, params map[string]string) ([]RawMeal, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var result mealListResponse
	if err := common.ParseJSONBytes(body, &result); err != nil {
		return nil, fmt.Errorf("unexpected response body: %v: %w", err, common.ErrUpstreamUnavailable)
	}
	return result.Meals, nil
}

// get 發送單次 GET 請求，網路錯誤或非 200 一律回報 UpstreamUnavailable
// 不重試、不快取，每次調用都是全新的外部請求
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	common.LogUpstreamCall(path, time.Since(start), err, requestIDFromContext(ctx))

	if err != nil {
		return nil, fmt.Errorf("request failed: %v: %w", err, common.ErrUpstreamUnavailable)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("外部 API 回傳異常狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("endpoint", path),
		)
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode(), common.ErrUpstreamUnavailable)
	}

	return resp.Body(), nil
}

// requestIDKey context 中請求 ID 的鍵
type requestIDKey struct{}

// WithRequestID 將請求 ID 放入 context，僅用於日誌
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
