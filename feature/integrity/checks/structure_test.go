package checks

import (
	"context"
	"testing"

	"craft-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func emptyObjects() <-chan minio.ObjectInfo {
	return mocks.Objects()
}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		missing, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.Error(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, assert.AnError)

		_, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyObjects())

		missing, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.NoError(t, err)
		assert.Equal(t, []string{"catalog", "sessions"}, missing)
	})

	t.Run("Some Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "catalog/"
		})).Return(mocks.Objects("catalog/recipes.json"))
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyObjects())

		missing, err := CheckStructure(context.Background(), mockClient, "assets")
		assert.NoError(t, err)
		assert.Equal(t, []string{"sessions"}, missing)
	})
}

func TestFixStructure(t *testing.T) {
	t.Run("Creates bucket and folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "assets", minio.MakeBucketOptions{Region: "eu"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "assets", "catalog/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		mockClient.On("PutObject", mock.Anything, "assets", "sessions/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "assets", "eu", zap.NewNop(), []string{"catalog", "sessions"})
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Put Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "assets", "catalog/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

		err := FixStructure(context.Background(), mockClient, "assets", "", zap.NewNop(), []string{"catalog"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCheckObjects(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "catalog/recipes.json"
	})).Return(mocks.Objects("catalog/recipes.json"))
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(emptyObjects())

	missing, err := CheckObjects(context.Background(), mockClient, "assets", []string{"catalog/recipes.json", "catalog/extra.yaml"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"catalog/extra.yaml"}, missing)
}
