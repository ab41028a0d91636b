package calculator

import (
	"context"
	"errors"
	"testing"

	"craft-planner/core/catalog"
	"craft-planner/core/quantity"
	"craft-planner/core/request"
	"craft-planner/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(cacheSeconds int) *Service {
	loader := catalog.NewLoader(catalog.Config{Source: catalog.SourceBuiltin}, nil, "")
	return NewService(loader, resolver.Config{MaxDepth: 64, ResultCacheSeconds: cacheSeconds}, zap.NewNop())
}

func TestService_Calculate(t *testing.T) {
	svc := newTestService(0)

	out, err := svc.Calculate(context.Background(), Input{Items: "Wooden Pickaxe, 1"})
	require.NoError(t, err)

	assert.Equal(t, quantity.Map{"Log": 2}, out.Inputs)
	assert.Equal(t, quantity.Map{"Wooden Pickaxe": 1}, out.Categories.Finished)
	assert.True(t, out.Summary.Complete)
	assert.Empty(t, out.Assumptions)
	assert.Equal(t, catalog.Default().Digest(), out.CatalogDigest)
	assert.False(t, out.Cached)
}

func TestService_CalculateStructuredWithPool(t *testing.T) {
	svc := newTestService(0)

	out, err := svc.Calculate(context.Background(), Input{
		Requests: []request.Item{{Name: "Stick", Qty: 4}},
		Pool:     map[string]float64{"Planks": 2},
	})
	require.NoError(t, err)

	assert.Empty(t, out.Inputs)
	assert.Equal(t, quantity.Map{"Stick": 4}, out.Pool.Map())
}

func TestService_CalculateRecordsAssumptions(t *testing.T) {
	svc := newTestService(0)

	out, err := svc.Calculate(context.Background(), Input{Items: "wooden pickax"})
	require.NoError(t, err)

	assert.Equal(t, []request.Assumption{{Input: "wooden pickax", Matched: "Wooden Pickaxe"}}, out.Assumptions)
	assert.Equal(t, "Wooden Pickaxe", out.Requests[0].Name)
}

func TestService_CalculateRejects(t *testing.T) {
	svc := newTestService(0)

	tests := []struct {
		name string
		in   Input
	}{
		{"Empty", Input{}},
		{"Unknown item", Input{Items: "Diamond Sword, 1"}},
		{"Bad quantity", Input{Items: "Planks, -1"}},
		{"Structured bad quantity", Input{Requests: []request.Item{{Name: "Planks", Qty: 0}}}},
		{"Oversized quantity", Input{Items: "Planks, 1e20"}},
		{"Structured oversized quantity", Input{Requests: []request.Item{{Name: "Planks", Qty: 1e20}}}},
		{"Negative pool", Input{Items: "Planks", Pool: map[string]float64{"Log": -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), tt.in)
			assert.True(t, errors.Is(err, request.ErrInvalidRequest), "got %v", err)
		})
	}
}

func TestService_CalculateCache(t *testing.T) {
	svc := newTestService(60)
	ctx := context.Background()

	first, err := svc.Calculate(ctx, Input{Items: "Planks, 4"})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Calculate(ctx, Input{Requests: []request.Item{{Name: "Planks", Qty: 4}}})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Inputs, second.Inputs)

	other, err := svc.Calculate(ctx, Input{Items: "Planks, 4", Pool: map[string]float64{"Log": 1}})
	require.NoError(t, err)
	assert.False(t, other.Cached)

	svc.Flush()
	again, err := svc.Calculate(ctx, Input{Items: "Planks, 4"})
	require.NoError(t, err)
	assert.False(t, again.Cached)
}

func TestService_Render(t *testing.T) {
	svc := newTestService(0)

	text, err := svc.Render(context.Background(), Input{Items: "wooden pickax"})
	require.NoError(t, err)

	assert.Contains(t, text, "Assuming 'wooden pickax' meant 'Wooden Pickaxe'\n")
	assert.Contains(t, text, "Total base resources needed:\n  Log: 2\n")
}

func TestService_CatalogError(t *testing.T) {
	loader := catalog.NewLoader(catalog.Config{Source: "nowhere"}, nil, "")
	svc := NewService(loader, resolver.Config{}, zap.NewNop())

	_, err := svc.Calculate(context.Background(), Input{Items: "Planks"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, request.ErrInvalidRequest))
}
