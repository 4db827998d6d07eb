package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"recipe-tools/internal/pkg/common"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// Invocation 調用上下文，caller 身分只用於觀測日誌
type Invocation struct {
	AgentID   string
	RequestID string
}

// Handler 工具處理函數
type Handler func(ctx context.Context, args map[string]interface{}, inv Invocation) (*Result, error)

// Descriptor 工具描述符，對外宣告名稱、輸入結構與計價註記
type Descriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Pricing     string                 `json:"pricing"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Info 內部工具信息（包含 handler）
type Info struct {
	Descriptor Descriptor
	Handler    Handler
}

// Registry 工具註冊表
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Info
	order []string // 保持註冊順序，列表輸出穩定
}

// NewRegistry 創建工具註冊表
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Info),
	}
}

// RegisterTool 注册單個工具
func (r *Registry) RegisterTool(info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[info.Descriptor.Name]; !exists {
		r.order = append(r.order, info.Descriptor.Name)
	}
	r.tools[info.Descriptor.Name] = &info
	common.LogInfo("工具已註冊",
		zap.String("tool", info.Descriptor.Name),
		zap.String("pricing", info.Descriptor.Pricing),
	)
}

// List 列出所有工具描述符，依註冊順序
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(r.tools))
	for _, name := range r.order {
		descriptors = append(descriptors, r.tools[name].Descriptor)
	}
	return descriptors
}

// Call 執行工具調用
// 輸入在這裡統一對宣告的 JSON Schema 驗證，通過後 handler 不再重複驗證
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}, inv Invocation) (*Result, error) {
	r.mu.RLock()
	info, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("tool %q is not registered: %w", name, common.ErrToolNotFound)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	if err := validateArgs(info.Descriptor.InputSchema, args); err != nil {
		common.LogWarn("工具輸入驗證失敗",
			zap.String("tool", name),
			zap.Error(err),
			zap.String("request_id", inv.RequestID),
		)
		return nil, err
	}

	common.LogToolInvocation(name, inv.AgentID, inv.RequestID)
	result, err := info.Handler(ctx, args, inv)
	if err != nil {
		common.LogError("工具執行失敗",
			zap.String("tool", name),
			zap.Error(err),
			zap.String("request_id", inv.RequestID),
		)
		return nil, err
	}

	return result, nil
}

// validateArgs 以 JSON Schema 驗證輸入參數
func validateArgs(schema map[string]interface{}, args map[string]interface{}) error {
	if schema == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return common.NewValidationError(strings.Join(details, "; "))
	}

	return nil
}
