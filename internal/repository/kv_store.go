package repository

import (
	"context"
	"sync"
)

// KVStore 键值存储抽象：记录集合与主题标记均以文本形式存放其中
type KVStore interface {
	// Get 读取键值；键不存在时 found=false 且 err=nil
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set 覆盖写入
	Set(ctx context.Context, key, value string) error
}

// 存储键（与浏览器端 localStorage 的布局保持一致，便于数据迁移）
const (
	KeyPersonnel   = "nobet_personnel"
	KeyDutyTypes   = "nobet_duty_types"
	KeyDutyEntries = "nobet_duty_entries"
	KeyImages      = "nobet_images"
	KeyTheme       = "theme"
)

// memoryKV 进程内 KVStore 实现（默认驱动，也用于测试与 CLI 试运行）
type memoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV 创建内存 KVStore
func NewMemoryKV() KVStore {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
