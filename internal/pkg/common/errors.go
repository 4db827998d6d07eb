package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As 鏈式比對
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 從錯誤鏈中取出 CustomError
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeBadGateway         = "BAD_GATEWAY"         // 502
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"     // 408

	// 業務錯誤代碼
	ErrCodeRecipeNotFound      = "NOT_FOUND"            // 查無符合的食譜
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE" // 外部 API 連線失敗或回傳非 200
	ErrCodeMalformedRecord     = "MALFORMED_RECORD"     // 外部資料缺少必要欄位
	ErrCodeInvalidFilterType   = "INVALID_FILTER_TYPE"  // 篩選維度不在列舉集合內
	ErrCodeToolNotFound        = "TOOL_NOT_FOUND"       // 工具未註冊
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)

	// 業務錯誤
	ErrRecipeNotFound      = NewError(ErrCodeRecipeNotFound, "查無符合的食譜", http.StatusNotFound, nil)
	ErrUpstreamUnavailable = NewError(ErrCodeUpstreamUnavailable, "外部食譜 API 暫時不可用", http.StatusBadGateway, nil)
	ErrMalformedRecord     = NewError(ErrCodeMalformedRecord, "外部食譜資料缺少必要欄位", http.StatusBadGateway, nil)
	ErrInvalidFilterType   = NewError(ErrCodeInvalidFilterType, "不支援的篩選維度", http.StatusBadRequest, nil)
	ErrToolNotFound        = NewError(ErrCodeToolNotFound, "工具不存在", http.StatusNotFound, nil)
)
