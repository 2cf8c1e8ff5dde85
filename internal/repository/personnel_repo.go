package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// PersonnelRepository 人员数据访问接口
type PersonnelRepository interface {
	List(ctx context.Context) ([]model.Personnel, error)
	GetByID(ctx context.Context, id string) (*model.Personnel, error)
	Create(ctx context.Context, p *model.Personnel) error
	Delete(ctx context.Context, id string) error
}

type personnelRepo struct {
	col *collection[model.Personnel]
}

// NewPersonnelRepo 创建 PersonnelRepository 实例
func NewPersonnelRepo(kv KVStore) PersonnelRepository {
	return &personnelRepo{col: newCollection[model.Personnel](kv, KeyPersonnel)}
}

func (r *personnelRepo) List(ctx context.Context) ([]model.Personnel, error) {
	return r.col.list(ctx)
}

func (r *personnelRepo) GetByID(ctx context.Context, id string) (*model.Personnel, error) {
	return r.col.find(ctx, id)
}

// Create 生成 ID 与创建时间后追加
func (r *personnelRepo) Create(ctx context.Context, p *model.Personnel) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.col.append(ctx, *p)
}

func (r *personnelRepo) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
