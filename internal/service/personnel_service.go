package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 人员模块业务错误 ──

var (
	ErrNameRequired      = fmt.Errorf("%w: 名称不能为空", pkgerrors.ErrValidation)
	ErrPersonnelNotFound = errors.New("人员不存在")
)

// PersonnelService 人员业务接口
type PersonnelService interface {
	List(ctx context.Context) ([]dto.PersonnelResponse, error)
	Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error)
	Delete(ctx context.Context, id string) error
}

type personnelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonnelService 创建 PersonnelService 实例
func NewPersonnelService(repo *repository.Repository, logger *zap.Logger) PersonnelService {
	return &personnelService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *personnelService) List(ctx context.Context) ([]dto.PersonnelResponse, error) {
	list, err := s.repo.Personnel.List(ctx)
	if err != nil {
		s.logger.Error("列出人员失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonnelResponse, 0, len(list))
	for i := range list {
		result = append(result, toPersonnelResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *personnelService) Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p := &model.Personnel{Name: name}
	if err := s.repo.Personnel.Create(ctx, p); err != nil {
		s.logger.Error("创建人员失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("人员已创建", zap.String("id", p.ID))
	resp := toPersonnelResponse(p)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 幂等；已有值班记录中的人员名称快照不受影响
func (s *personnelService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Personnel.Delete(ctx, id); err != nil {
		s.logger.Error("删除人员失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toPersonnelResponse(p *model.Personnel) dto.PersonnelResponse {
	return dto.PersonnelResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(timeLayout),
	}
}
