package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// DutyEntryRepository 值班记录数据访问接口
// List 返回插入顺序，调用方需要时间顺序时必须自行排序
type DutyEntryRepository interface {
	List(ctx context.Context) ([]model.DutyEntry, error)
	Create(ctx context.Context, e *model.DutyEntry) error
	Delete(ctx context.Context, id string) error
}

type dutyEntryRepo struct {
	col *collection[model.DutyEntry]
}

// NewDutyEntryRepo 创建 DutyEntryRepository 实例
func NewDutyEntryRepo(kv KVStore) DutyEntryRepository {
	return &dutyEntryRepo{col: newCollection[model.DutyEntry](kv, KeyDutyEntries)}
}

func (r *dutyEntryRepo) List(ctx context.Context) ([]model.DutyEntry, error) {
	return r.col.list(ctx)
}

func (r *dutyEntryRepo) Create(ctx context.Context, e *model.DutyEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return r.col.append(ctx, *e)
}

func (r *dutyEntryRepo) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
