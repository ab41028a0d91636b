package integrity

import (
	"context"
	"testing"

	"craft-planner/core/catalog"
	"craft-planner/core/storage"
	"craft-planner/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newService(client storage.Client, catalogCfg catalog.Config, db *gorm.DB) *Service {
	loader := catalog.NewLoader(catalogCfg, client, "test-bucket")
	return NewService(client, storage.Config{Bucket: "test-bucket", Region: "eu"}, loader, catalogCfg, db, zap.NewNop())
}

func TestService_CheckCatalog(t *testing.T) {
	svc := newService(nil, catalog.Config{Source: catalog.SourceBuiltin}, nil)

	report, err := svc.CheckCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Healthy)
}

func TestService_CheckStorage(t *testing.T) {
	t.Run("Builtin catalog only checks folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newService(mockClient, catalog.Config{Source: catalog.SourceBuiltin}, nil)

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		report, err := svc.CheckStorage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"catalog", "sessions"}, report.MissingFolders)
		assert.Empty(t, report.MissingObjects)
	})

	t.Run("Storage catalog checks the object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newService(mockClient, catalog.Config{Source: catalog.SourceStorage, Object: "catalog/recipes.json"}, nil)

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		report, err := svc.CheckStorage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"catalog/recipes.json"}, report.MissingObjects)
	})

	t.Run("No client", func(t *testing.T) {
		svc := newService(nil, catalog.Config{Source: catalog.SourceBuiltin}, nil)

		_, err := svc.CheckStorage(context.Background())
		assert.ErrorIs(t, err, ErrStorageDisabled)
		assert.ErrorIs(t, svc.FixStorage(context.Background(), []string{"catalog"}), ErrStorageDisabled)
	})
}

func TestService_FixStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := newService(mockClient, catalog.Config{Source: catalog.SourceBuiltin}, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "sessions/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	assert.NoError(t, svc.FixStorage(context.Background(), []string{"sessions"}))
	mockClient.AssertExpectations(t)
}

func TestService_CheckServer(t *testing.T) {
	svc := newService(nil, catalog.Config{Source: catalog.SourceBuiltin}, nil)

	_, err := svc.CheckServer()
	assert.Error(t, err)
}
