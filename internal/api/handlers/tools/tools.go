package tools

import (
	"net/http"

	"recipe-tools/internal/core/mealdb"
	coreTools "recipe-tools/internal/core/tools"
	"recipe-tools/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 工具調用處理程序
type Handler struct {
	registry *coreTools.Registry
}

// NewHandler 創建新的工具調用處理程序
func NewHandler(registry *coreTools.Registry) *Handler {
	return &Handler{
		registry: registry,
	}
}

// ListResponse 工具列表響應
type ListResponse struct {
	Tools []coreTools.Descriptor `json:"tools"`
}

// HandleListTools 列出所有已註冊工具及其輸入結構與計價註記
func (h *Handler) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{
		Tools: h.registry.List(),
	})
}

// HandleInvokeTool 調用指定工具
// 請求體為工具參數物件（可為空），X-Agent-ID 標頭為調用方身分
func (h *Handler) HandleInvokeTool(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	toolName := c.Param("name")

	// 空請求體視為無參數調用
	args := map[string]interface{}{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&args); err != nil {
			common.LogError("請求格式無效",
				zap.Error(err),
				zap.String("tool", toolName),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
	}

	inv := coreTools.Invocation{
		AgentID:   c.GetHeader("X-Agent-ID"),
		RequestID: requestID,
	}

	ctx := mealdb.WithRequestID(c.Request.Context(), requestID)
	result, err := h.registry.Call(ctx, toolName, args, inv)
	if err != nil {
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, result)
}

// errorResponse 將工具層錯誤映射為 HTTP 狀態碼與響應體
func errorResponse(err error) (int, gin.H) {
	// 輸入驗證失敗
	if common.IsValidationError(err) {
		return http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		}
	}

	// 業務錯誤帶有狀態碼與錯誤代碼
	if ce, ok := common.AsCustomError(err); ok {
		return ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		}
	}

	return http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	}
}
