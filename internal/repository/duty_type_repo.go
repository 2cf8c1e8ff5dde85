package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// DutyTypeRepository 值班类型数据访问接口
type DutyTypeRepository interface {
	List(ctx context.Context) ([]model.DutyType, error)
	GetByID(ctx context.Context, id string) (*model.DutyType, error)
	Create(ctx context.Context, d *model.DutyType) error
	Delete(ctx context.Context, id string) error
}

type dutyTypeRepo struct {
	col *collection[model.DutyType]
}

// NewDutyTypeRepo 创建 DutyTypeRepository 实例
func NewDutyTypeRepo(kv KVStore) DutyTypeRepository {
	return &dutyTypeRepo{col: newCollection[model.DutyType](kv, KeyDutyTypes)}
}

func (r *dutyTypeRepo) List(ctx context.Context) ([]model.DutyType, error) {
	return r.col.list(ctx)
}

func (r *dutyTypeRepo) GetByID(ctx context.Context, id string) (*model.DutyType, error) {
	return r.col.find(ctx, id)
}

func (r *dutyTypeRepo) Create(ctx context.Context, d *model.DutyType) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.col.append(ctx, *d)
}

func (r *dutyTypeRepo) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
