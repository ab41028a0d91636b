package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"craft-planner/core/pool"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is the sessions table row.
type Record struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Pool      string    `gorm:"column:pool;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime"`
}

// TableName overrides the table name used by Record to `sessions`.
func (Record) TableName() string {
	return "sessions"
}

func (r Record) session() (*Session, error) {
	s := &Session{ID: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
	if r.Pool != "" {
		if err := json.Unmarshal([]byte(r.Pool), &s.Pool); err != nil {
			return nil, fmt.Errorf("failed to decode pool of session %s: %w", r.ID, err)
		}
	}
	return s, nil
}

// DBStore keeps sessions in a SQL table.
type DBStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDBStore creates a store on db. Call Migrate once before use.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db, now: time.Now}
}

// Migrate creates or updates the sessions table.
func (s *DBStore) Migrate() error {
	if err := s.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	return nil
}

func (s *DBStore) Create(ctx context.Context) (*Session, error) {
	now := s.now()
	rec := Record{ID: uuid.NewString(), Pool: "{}", CreatedAt: now, UpdatedAt: now}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return rec.session()
}

func (s *DBStore) Get(ctx context.Context, id string) (*Session, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return rec.session()
}

func (s *DBStore) SavePool(ctx context.Context, id string, p pool.Pool) (*Session, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	res := s.db.WithContext(ctx).Model(&Record{}).Where("id = ?", id).
		Updates(map[string]interface{}{"pool": string(raw), "updated_at": s.now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to save session %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *DBStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Record{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
