package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrRecordNotFound 集合中不存在指定 ID 的记录
var ErrRecordNotFound = errors.New("记录不存在")

// identified 可按 ID 定位的记录
type identified interface {
	GetID() string
}

// collection 以单个键保存的有序记录集合（JSON 数组）
//
// 写操作均为「读全量 → 修改 → 覆盖写回」。mu 只串行化本进程内的写入，
// 多实例并发写同一集合时以最后一次写入为准。
type collection[T identified] struct {
	kv  KVStore
	key string
	mu  sync.Mutex
}

func newCollection[T identified](kv KVStore, key string) *collection[T] {
	return &collection[T]{kv: kv, key: key}
}

// list 按插入顺序返回全部记录；键不存在时返回空切片
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("读取集合 %s 失败: %w", c.key, err)
	}
	items := make([]T, 0)
	if !found || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("解析集合 %s 失败: %w", c.key, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("序列化集合 %s 失败: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("写入集合 %s 失败: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) find(ctx context.Context, id string) (*T, error) {
	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].GetID() == id {
			return &items[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

func (c *collection[T]) append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(items, item))
}

// remove 过滤掉指定 ID 后整体写回；ID 不存在时集合内容不变
func (c *collection[T]) remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	return c.save(ctx, kept)
}
