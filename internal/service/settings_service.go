package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 设置模块业务错误 ──

var (
	ErrInvalidTheme = fmt.Errorf("%w: 主题只能是 light 或 dark", pkgerrors.ErrValidation)
)

// SettingsService 界面设置业务接口
type SettingsService interface {
	GetTheme(ctx context.Context) (*dto.ThemeResponse, error)
	SetTheme(ctx context.Context, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error)
	ToggleTheme(ctx context.Context) (*dto.ThemeResponse, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService 创建 SettingsService 实例
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) GetTheme(ctx context.Context) (*dto.ThemeResponse, error) {
	theme, err := s.repo.Settings.GetTheme(ctx)
	if err != nil {
		s.logger.Error("读取主题失败", zap.Error(err))
		return nil, err
	}
	return &dto.ThemeResponse{Theme: string(theme)}, nil
}

func (s *settingsService) SetTheme(ctx context.Context, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	theme := model.Theme(req.Theme)
	if !theme.Valid() {
		return nil, ErrInvalidTheme
	}
	if err := s.repo.Settings.SetTheme(ctx, theme); err != nil {
		s.logger.Error("保存主题失败", zap.Error(err))
		return nil, err
	}
	return &dto.ThemeResponse{Theme: string(theme)}, nil
}

// ToggleTheme 读取当前主题并写回相反值
func (s *settingsService) ToggleTheme(ctx context.Context) (*dto.ThemeResponse, error) {
	current, err := s.repo.Settings.GetTheme(ctx)
	if err != nil {
		s.logger.Error("读取主题失败", zap.Error(err))
		return nil, err
	}
	next := current.Toggled()
	if err := s.repo.Settings.SetTheme(ctx, next); err != nil {
		s.logger.Error("保存主题失败", zap.Error(err))
		return nil, err
	}
	return &dto.ThemeResponse{Theme: string(next)}, nil
}
