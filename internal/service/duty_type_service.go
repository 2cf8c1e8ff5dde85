package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
)

// ── 值班类型模块业务错误 ──

var (
	ErrDutyTypeNotFound = errors.New("值班类型不存在")
)

// DutyTypeService 值班类型业务接口
type DutyTypeService interface {
	List(ctx context.Context) ([]dto.DutyTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateDutyTypeRequest) (*dto.DutyTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type dutyTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDutyTypeService 创建 DutyTypeService 实例
func NewDutyTypeService(repo *repository.Repository, logger *zap.Logger) DutyTypeService {
	return &dutyTypeService{repo: repo, logger: logger}
}

func (s *dutyTypeService) List(ctx context.Context) ([]dto.DutyTypeResponse, error) {
	list, err := s.repo.DutyType.List(ctx)
	if err != nil {
		s.logger.Error("列出值班类型失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DutyTypeResponse, 0, len(list))
	for i := range list {
		result = append(result, toDutyTypeResponse(&list[i]))
	}
	return result, nil
}

func (s *dutyTypeService) Create(ctx context.Context, req *dto.CreateDutyTypeRequest) (*dto.DutyTypeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	dt := &model.DutyType{Name: name}
	if err := s.repo.DutyType.Create(ctx, dt); err != nil {
		s.logger.Error("创建值班类型失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("值班类型已创建", zap.String("id", dt.ID))
	resp := toDutyTypeResponse(dt)
	return &resp, nil
}

func (s *dutyTypeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DutyType.Delete(ctx, id); err != nil {
		s.logger.Error("删除值班类型失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toDutyTypeResponse(dt *model.DutyType) dto.DutyTypeResponse {
	return dto.DutyTypeResponse{
		ID:        dt.ID,
		Name:      dt.Name,
		CreatedAt: dt.CreatedAt.Format(timeLayout),
	}
}
