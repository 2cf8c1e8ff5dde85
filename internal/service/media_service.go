package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/dataurl"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 图片模块业务错误 ──

var (
	ErrImageInvalid  = fmt.Errorf("%w: 只接受图片文件", pkgerrors.ErrValidation)
	ErrImageNotFound = errors.New("图片不存在")
	ErrImageCorrupt  = errors.New("图片数据损坏")
)

// MediaService 图片业务接口
type MediaService interface {
	List(ctx context.Context) ([]dto.ImageResponse, error)
	// Get 返回解码后的图片内容及其 MIME 类型
	Get(ctx context.Context, id string) (string, []byte, error)
	Upload(ctx context.Context, data []byte, description string) (*dto.ImageResponse, error)
	Delete(ctx context.Context, id string) error
}

type mediaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMediaService 创建 MediaService 实例
func NewMediaService(repo *repository.Repository, logger *zap.Logger) MediaService {
	return &mediaService{repo: repo, logger: logger}
}

func (s *mediaService) List(ctx context.Context) ([]dto.ImageResponse, error) {
	images, err := s.repo.Image.List(ctx)
	if err != nil {
		s.logger.Error("列出图片失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ImageResponse, 0, len(images))
	for i := range images {
		result = append(result, toImageResponse(&images[i]))
	}
	return result, nil
}

func (s *mediaService) Get(ctx context.Context, id string) (string, []byte, error) {
	img, err := s.repo.Image.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return "", nil, ErrImageNotFound
		}
		s.logger.Error("查询图片失败", zap.String("id", id), zap.Error(err))
		return "", nil, err
	}

	mime, payload, err := dataurl.Decode(img.DataURL)
	if err != nil {
		s.logger.Warn("图片 data URL 无法解析", zap.String("id", id), zap.Error(err))
		return "", nil, ErrImageCorrupt
	}
	return mime, payload, nil
}

// Upload 根据内容嗅探 MIME 类型，非 image/* 拒绝；内容以 data URL 形式保存
func (s *mediaService) Upload(ctx context.Context, data []byte, description string) (*dto.ImageResponse, error) {
	if len(data) == 0 {
		return nil, ErrImageInvalid
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, ErrImageInvalid
	}

	img := &model.UploadedImage{
		DataURL:     dataurl.Encode(mime, data),
		Description: strings.TrimSpace(description),
	}
	if err := s.repo.Image.Create(ctx, img); err != nil {
		s.logger.Error("保存图片失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("图片已上传",
		zap.String("id", img.ID),
		zap.String("mime", mime),
		zap.Int("size", len(data)),
	)
	resp := toImageResponse(img)
	return &resp, nil
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Image.Delete(ctx, id); err != nil {
		s.logger.Error("删除图片失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toImageResponse(img *model.UploadedImage) dto.ImageResponse {
	return dto.ImageResponse{
		ID:          img.ID,
		DataURL:     img.DataURL,
		Description: img.Description,
		UploadedAt:  img.UploadedAt.Format(timeLayout),
	}
}
