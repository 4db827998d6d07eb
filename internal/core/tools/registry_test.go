package tools

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"recipe-tools/internal/core/mealdb"
	"recipe-tools/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRegistry 建立帶三個預設工具的註冊表，上游以 httptest 模擬
func newTestRegistry(t *testing.T, handler http.HandlerFunc) *Registry {
	t.Helper()
	return NewDefaultRegistry(newTestService(t, handler))
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {})

	descriptors := registry.List()
	require.Len(t, descriptors, 3)
	assert.Equal(t, ToolRecipeLookup, descriptors[0].Name)
	assert.Equal(t, ToolRecipeRandom, descriptors[1].Name)
	assert.Equal(t, ToolRecipeFilter, descriptors[2].Name)

	// 每個工具都宣告輸入結構與固定計價註記
	for _, d := range descriptors {
		assert.Equal(t, PricingFree, d.Pricing)
		assert.NotEmpty(t, d.Description)
		require.NotNil(t, d.InputSchema)
		assert.Equal(t, "object", d.InputSchema["type"])
	}
}

func TestCallUnknownTool(t *testing.T) {
	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := registry.Call(context.Background(), "recipe_delete", map[string]interface{}{}, Invocation{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrToolNotFound))
}

func TestCallValidatesInputSchema(t *testing.T) {
	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure must not reach upstream")
	})

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"lookup missing name", ToolRecipeLookup, map[string]interface{}{}},
		{"lookup empty name", ToolRecipeLookup, map[string]interface{}{"name": ""}},
		{"lookup non-string name", ToolRecipeLookup, map[string]interface{}{"name": 42}},
		{"lookup unexpected field", ToolRecipeLookup, map[string]interface{}{"name": "Tea", "limit": 3}},
		{"random unexpected field", ToolRecipeRandom, map[string]interface{}{"seed": 1}},
		{"filter missing value", ToolRecipeFilter, map[string]interface{}{"filter_type": "area"}},
		{"filter unknown dimension", ToolRecipeFilter, map[string]interface{}{
			"filter_type":  "cuisine",
			"filter_value": "Canadian",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Call(context.Background(), tt.tool, tt.args, Invocation{})
			require.Error(t, err)
			assert.True(t, common.IsValidationError(err))
		})
	}
}

func TestCallDispatchesToHandler(t *testing.T) {
	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":[` + teaMealJSON + `]}`))
	})

	result, err := registry.Call(context.Background(), ToolRecipeLookup,
		map[string]interface{}{"name": "Tea"},
		Invocation{AgentID: "agent-1", RequestID: "req-1"},
	)
	require.NoError(t, err)
	assert.Contains(t, result.Text, `"Tea"`)
}

func TestCallNilArgsTreatedAsEmpty(t *testing.T) {
	registry := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":[` + teaMealJSON + `]}`))
	})

	// 無參數工具允許 nil 參數
	result, err := registry.Call(context.Background(), ToolRecipeRandom, nil, Invocation{})
	require.NoError(t, err)

	recipe, ok := result.Data.(*mealdb.Recipe)
	require.True(t, ok)
	assert.Equal(t, "Tea", recipe.Name)
}

func TestRegisterToolOverwriteKeepsOrder(t *testing.T) {
	registry := NewRegistry()
	noop := func(ctx context.Context, args map[string]interface{}, inv Invocation) (*Result, error) {
		return &Result{}, nil
	}

	registry.RegisterTool(Info{Descriptor: Descriptor{Name: "a"}, Handler: noop})
	registry.RegisterTool(Info{Descriptor: Descriptor{Name: "b"}, Handler: noop})
	registry.RegisterTool(Info{Descriptor: Descriptor{Name: "a", Description: "updated"}, Handler: noop})

	descriptors := registry.List()
	require.Len(t, descriptors, 2)
	assert.Equal(t, "a", descriptors[0].Name)
	assert.Equal(t, "updated", descriptors[0].Description)
	assert.Equal(t, "b", descriptors[1].Name)
}
