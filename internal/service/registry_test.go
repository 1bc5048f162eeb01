package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calcProvider "github.com/calcware/numerics/internal/providers/calc"
	"github.com/calcware/numerics/internal/types"
)

type stubProvider struct {
	id       string
	category types.Category
}

func (s *stubProvider) Definition() types.Service {
	return types.Service{
		ID:       s.id,
		Name:     "Stub",
		Category: s.category,
		Tools:    []types.Tool{{ID: s.id + ".noop"}},
	}
}

func (s *stubProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{Success: true, Data: map[string]interface{}{"tool": toolID}}, nil
}

func TestRegister(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(&stubProvider{id: "stub", category: types.CategorySystem})
	require.NoError(t, err)

	_, ok := registry.Get("stub")
	assert.True(t, ok)
}

func TestRegisterEmptyID(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(&stubProvider{id: ""})
	assert.Error(t, err)
}

func TestUnregister(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubProvider{id: "stub"}))
	registry.Unregister("stub")

	_, ok := registry.Get("stub")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubProvider{id: "alpha", category: types.CategorySystem}))
	require.NoError(t, registry.Register(&stubProvider{id: "beta", category: types.CategoryMath}))

	t.Run("All services", func(t *testing.T) {
		services := registry.List(nil)
		require.Len(t, services, 2)
		assert.Equal(t, "alpha", services[0].ID)
		assert.Equal(t, "beta", services[1].ID)
	})

	t.Run("Filtered by category", func(t *testing.T) {
		cat := types.CategoryMath
		services := registry.List(&cat)
		require.Len(t, services, 1)
		assert.Equal(t, "beta", services[0].ID)
	})
}

func TestExecute(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(calcProvider.NewProvider()))
	ctx := context.Background()

	t.Run("Routes to provider", func(t *testing.T) {
		result, err := registry.Execute(ctx, "calc.add", map[string]interface{}{
			"a": 2.0,
			"b": 3.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 5.0, result.Data["result"])
	})

	t.Run("Invalid tool ID format", func(t *testing.T) {
		result, err := registry.Execute(ctx, "noseparator", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Unknown service", func(t *testing.T) {
		result, err := registry.Execute(ctx, "ghost.add", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})
}

func TestStats(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(calcProvider.NewProvider()))

	stats := registry.Stats()
	assert.Equal(t, 1, stats["total_services"])
	assert.Equal(t, 12, stats["total_tools"])
}
