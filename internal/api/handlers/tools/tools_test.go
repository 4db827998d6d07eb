package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipe-tools/internal/core/mealdb"
	coreTools "recipe-tools/internal/core/tools"
	"recipe-tools/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRouter 建立只掛工具路由的測試路由器，上游以 httptest 模擬
func setupTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := mealdb.NewClient(config.MealDBConfig{
		BaseURL: srv.URL,
		APIKey:  "1",
		Timeout: 5 * time.Second,
	})
	registry := coreTools.NewDefaultRegistry(coreTools.NewService(client))
	handler := NewHandler(registry)

	router := gin.New()
	router.GET("/api/v1/tools", handler.HandleListTools)
	router.POST("/api/v1/tools/:name/invoke", handler.HandleInvokeTool)
	return router
}

func TestHandleListTools(t *testing.T) {
	router := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tools", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tools []struct {
			Name        string                 `json:"name"`
			Pricing     string                 `json:"pricing"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Tools, 3)
	assert.Equal(t, "recipe_lookup", response.Tools[0].Name)
	assert.Equal(t, "recipe_random", response.Tools[1].Name)
	assert.Equal(t, "recipe_filter", response.Tools[2].Name)
	for _, tool := range response.Tools {
		assert.Equal(t, "free", tool.Pricing)
		assert.NotNil(t, tool.InputSchema)
	}
}

func TestHandleInvokeToolSuccess(t *testing.T) {
	router := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":[{
			"idMeal": "52900",
			"strMeal": "Tea",
			"strInstructions": "Boil.\nServe hot.",
			"strIngredient1": "Water",
			"strMeasure1": "1 cup"
		}]}`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tools/recipe_lookup/invoke",
		strings.NewReader(`{"name":"Tea"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Agent-ID", "agent-1")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// 未帶 X-Request-ID 時由服務端補發
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["text"], "Tea")
	assert.Contains(t, response, "data")
	assert.Contains(t, response, "ui")
}

func TestHandleInvokeToolEmptyBody(t *testing.T) {
	router := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":[{"strMeal":"Stew","strInstructions":"Cook."}]}`))
	})

	// 無參數工具可以不帶請求體
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tools/recipe_random/invoke", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleInvokeToolErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		upstream   http.HandlerFunc
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown tool",
			upstream:   func(w http.ResponseWriter, r *http.Request) {},
			path:       "/api/v1/tools/recipe_delete/invoke",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "TOOL_NOT_FOUND",
		},
		{
			name:       "schema violation",
			upstream:   func(w http.ResponseWriter, r *http.Request) {},
			path:       "/api/v1/tools/recipe_lookup/invoke",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "invalid filter dimension",
			upstream:   func(w http.ResponseWriter, r *http.Request) {},
			path:       "/api/v1/tools/recipe_filter/invoke",
			body:       `{"filter_type":"cuisine","filter_value":"Canadian"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name: "recipe not found",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"meals":null}`))
			},
			path:       "/api/v1/tools/recipe_lookup/invoke",
			body:       `{"name":"definitely not a meal"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "upstream unavailable",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			path:       "/api/v1/tools/recipe_lookup/invoke",
			body:       `{"name":"Tea"}`,
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_UNAVAILABLE",
		},
		{
			name: "malformed upstream record",
			upstream: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"meals":[{"idMeal":"1","strInstructions":"Cook."}]}`))
			},
			path:       "/api/v1/tools/recipe_lookup/invoke",
			body:       `{"name":"broken"}`,
			wantStatus: http.StatusBadGateway,
			wantCode:   "MALFORMED_RECORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(t, tt.upstream)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantCode, response["code"])
		})
	}
}

func TestHandleInvokeToolInvalidJSONBody(t *testing.T) {
	router := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tools/recipe_lookup/invoke",
		strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "INVALID_REQUEST", response["code"])
}

func TestHandleInvokeToolFilterEmptyResult(t *testing.T) {
	router := setupTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	// 篩選查無資料是成功回應，不是錯誤
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tools/recipe_filter/invoke",
		strings.NewReader(`{"filter_type":"area","filter_value":"Atlantis"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Text string        `json:"text"`
		Data []interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Text, "Found 0 recipes")
	assert.Empty(t, response.Data)
}
