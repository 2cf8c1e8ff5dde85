package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// gormKV 基于 PostgreSQL kv_records 表的 KVStore 实现
type gormKV struct {
	db *gorm.DB
}

// NewGormKV 创建 GORM KVStore 实例
func NewGormKV(db *gorm.DB) KVStore {
	return &gormKV{db: db}
}

func (s *gormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var rec model.KVRecord
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

// Set 以 ON CONFLICT (key) DO UPDATE 实现整值覆盖
func (s *gormKV) Set(ctx context.Context, key, value string) error {
	rec := model.KVRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}
