package session

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreRedis    = "redis"
)

// Config holds configuration for session persistence.
type Config struct {
	// Store is one of memory, database or redis.
	Store string `mapstructure:"store" default:"memory"`
	// RedisAddr is the host:port of the redis server.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword is the redis password.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB is the redis database number.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// TTLHours is how long an idle redis session lives.
	TTLHours int `mapstructure:"ttl_hours" default:"24"`
}

// TTL returns TTLHours as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// New builds the configured store. db is required by the database store only; it is
// migrated before the store is returned.
func New(cfg Config, db *gorm.DB) (Store, error) {
	switch cfg.Store {
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreDatabase:
		if db == nil {
			return nil, fmt.Errorf("session store %s requires a database connection", StoreDatabase)
		}
		store := NewDBStore(db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		return store, nil
	case StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(client, cfg.TTL()), nil
	default:
		return nil, fmt.Errorf("unknown session store: %s", cfg.Store)
	}
}
