package repository

import (
	"context"
	"fmt"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// SettingsRepository 界面设置数据访问接口（目前只有主题）
type SettingsRepository interface {
	GetTheme(ctx context.Context) (model.Theme, error)
	SetTheme(ctx context.Context, theme model.Theme) error
}

type settingsRepo struct {
	kv KVStore
}

// NewSettingsRepo 创建 SettingsRepository 实例
func NewSettingsRepo(kv KVStore) SettingsRepository {
	return &settingsRepo{kv: kv}
}

// GetTheme 未设置或值无法识别时返回默认主题
func (r *settingsRepo) GetTheme(ctx context.Context) (model.Theme, error) {
	raw, found, err := r.kv.Get(ctx, KeyTheme)
	if err != nil {
		return "", fmt.Errorf("读取主题失败: %w", err)
	}
	theme := model.Theme(raw)
	if !found || !theme.Valid() {
		return model.DefaultTheme, nil
	}
	return theme, nil
}

func (r *settingsRepo) SetTheme(ctx context.Context, theme model.Theme) error {
	return r.kv.Set(ctx, KeyTheme, string(theme))
}
