package integrity

import (
	"context"
	"errors"

	"craft-planner/core/catalog"
	"craft-planner/core/storage"
	"craft-planner/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when no client is configured.
var ErrStorageDisabled = errors.New("storage client is not configured")

// StorageReport is the result of the storage check.
type StorageReport struct {
	Bucket         string   `json:"bucket"`
	MissingFolders []string `json:"missing_folders"`
	MissingObjects []string `json:"missing_objects"`
}

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	bucket     string
	region     string
	catalogCfg catalog.Config
	loader     *catalog.Loader
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, storageCfg storage.Config, loader *catalog.Loader, catalogCfg catalog.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		bucket:     storageCfg.Bucket,
		region:     storageCfg.Region,
		catalogCfg: catalogCfg,
		loader:     loader,
		db:         db,
		logger:     logger,
	}
}

// CheckCatalog loads and analyzes the catalog.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	return checks.CheckCatalog(ctx, s.loader)
}

// CheckStorage returns the missing folders and, for the storage catalog source, whether
// the catalog object is missing.
func (s *Service) CheckStorage(ctx context.Context) (*StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	folders, err := checks.CheckStructure(ctx, s.client, s.bucket)
	if err != nil {
		return nil, err
	}

	var keys []string
	if s.catalogCfg.Source == catalog.SourceStorage {
		keys = append(keys, s.catalogCfg.Object)
	}
	objects, err := checks.CheckObjects(ctx, s.client, s.bucket, keys)
	if err != nil {
		return nil, err
	}

	return &StorageReport{Bucket: s.bucket, MissingFolders: folders, MissingObjects: objects}, nil
}

// FixStorage creates the bucket and the missing folders. Missing objects are not created.
func (s *Service) FixStorage(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// CheckServer checks the database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}
