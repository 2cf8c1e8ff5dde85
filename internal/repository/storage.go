package repository

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/database"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/redis"
)

var _ KVStore = (*redis.Client)(nil)

// Storage 按配置打开的存储后端
type Storage struct {
	KV    KVStore
	Redis *redis.Client // 仅 redis 驱动非空，同时供限流中间件使用

	closers []func() error
}

// OpenStorage 按 storage.driver 初始化 KVStore
func OpenStorage(cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		rdb, err := redis.NewClient(&cfg.Redis, cfg.Storage.KeyPrefix, logger)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: rdb, Redis: rdb, closers: []func() error{rdb.Close}}, nil

	case config.StoragePostgres:
		db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &Storage{KV: NewGormKV(db), closers: []func() error{sqlDB.Close}}, nil

	default:
		logger.Warn("使用内存存储，进程退出后数据将丢失")
		return &Storage{KV: NewMemoryKV()}, nil
	}
}

// Close 释放底层连接
func (s *Storage) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}
