package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	// KVSchemaVersion kv_records 表结构的目标版本，新增迁移文件时同步修改
	KVSchemaVersion uint = 1
	// kvMigrationsTable 迁移版本表，与业务表同库
	kvMigrationsTable = "kv_schema_migrations"
)

var ErrKVSchemaDirty = errors.New("kv_records 表结构迁移处于 dirty 状态，需要人工修复")

// kvMigrationSource 打开内嵌的 kv_records 迁移文件
func kvMigrationSource() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("加载 kv_records 迁移文件失败: %w", err)
	}
	return src, nil
}

// RunMigrations 将 kv_records 表结构升级到 KVSchemaVersion
// 迁移处于 dirty 状态或版本低于目标版本时返回错误，存储层拒绝启动
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	src, err := kvMigrationSource()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: kvMigrationsTable})
	if err != nil {
		return fmt.Errorf("创建 kv_records 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化 kv_records 迁移失败: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("升级 kv_records 表结构失败: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("读取 kv_records 表结构版本失败: %w", err)
	}
	if dirty {
		logger.Error("kv_records 表结构迁移中断", zap.Uint("version", version))
		return ErrKVSchemaDirty
	}
	if version < KVSchemaVersion {
		return fmt.Errorf("kv_records 表结构版本 %d 低于期望的 %d", version, KVSchemaVersion)
	}

	logger.Info("kv_records 表结构就绪",
		zap.Uint("version", version),
		zap.String("migrations_table", kvMigrationsTable),
	)
	return nil
}
