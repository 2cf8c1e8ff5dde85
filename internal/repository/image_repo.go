package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// ImageRepository 图片数据访问接口
type ImageRepository interface {
	List(ctx context.Context) ([]model.UploadedImage, error)
	GetByID(ctx context.Context, id string) (*model.UploadedImage, error)
	Create(ctx context.Context, img *model.UploadedImage) error
	Delete(ctx context.Context, id string) error
}

type imageRepo struct {
	col *collection[model.UploadedImage]
}

// NewImageRepo 创建 ImageRepository 实例
func NewImageRepo(kv KVStore) ImageRepository {
	return &imageRepo{col: newCollection[model.UploadedImage](kv, KeyImages)}
}

func (r *imageRepo) List(ctx context.Context) ([]model.UploadedImage, error) {
	return r.col.list(ctx)
}

func (r *imageRepo) GetByID(ctx context.Context, id string) (*model.UploadedImage, error) {
	return r.col.find(ctx, id)
}

func (r *imageRepo) Create(ctx context.Context, img *model.UploadedImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.UploadedAt.IsZero() {
		img.UploadedAt = time.Now().UTC()
	}
	return r.col.append(ctx, *img)
}

func (r *imageRepo) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
