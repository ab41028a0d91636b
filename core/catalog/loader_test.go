package catalog

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"craft-planner/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		source string
		valid  bool
	}{
		{SourceBuiltin, true},
		{SourceFile, true},
		{SourceStorage, true},
		{"ftp", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			err := Config{Source: tt.source}.Validate()
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestLoader_Builtin(t *testing.T) {
	l := NewLoader(Config{Source: SourceBuiltin, CacheTTLSeconds: 60}, nil, "")

	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Default().Digest(), c.Digest())

	again, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestLoader_StorageRequiresClient(t *testing.T) {
	l := NewLoader(Config{Source: SourceStorage, Object: "x.json"}, nil, "bucket")
	_, err := l.Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_StorageReloadsAfterInvalidate(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "bucket", "catalog/recipes.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(sampleJSON)), nil).Once()
	mockClient.On("GetObject", mock.Anything, "bucket", "catalog/recipes.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(sampleJSON)), nil).Once()

	l := NewLoader(Config{Source: SourceStorage, Object: "catalog/recipes.json", CacheTTLSeconds: 300}, mockClient, "bucket")
	assert.Equal(t, "storage|bucket|catalog/recipes.json", l.Key())

	_, err := l.Load(context.Background())
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)

	l.Reload()
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(time.Minute)
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }

	var loads int32
	load := func(context.Context) (*Catalog, error) {
		atomic.AddInt32(&loads, 1)
		return Default(), nil
	}

	_, err := cache.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	_, err = cache.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))

	now = now.Add(2 * time.Minute)
	_, err = cache.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
}

func TestCache_DisabledAndErrors(t *testing.T) {
	cache := NewCache(0)
	var loads int32
	load := func(context.Context) (*Catalog, error) {
		atomic.AddInt32(&loads, 1)
		return Default(), nil
	}
	_, _ = cache.GetOrLoad(context.Background(), "k", load)
	_, _ = cache.GetOrLoad(context.Background(), "k", load)
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))

	_, err := cache.GetOrLoad(context.Background(), "bad", func(context.Context) (*Catalog, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
