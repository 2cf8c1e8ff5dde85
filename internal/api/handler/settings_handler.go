package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// SettingsHandler 界面设置 HTTP 处理器
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler 创建 SettingsHandler
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetTheme 获取当前主题
// GET /api/v1/settings/theme
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	theme, err := h.settingsSvc.GetTheme(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, theme)
}

// UpdateTheme 设置主题
// PUT /api/v1/settings/theme
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	theme, err := h.settingsSvc.SetTheme(c.Request.Context(), &req)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}
	response.OK(c, theme)
}

// ToggleTheme 切换主题
// POST /api/v1/settings/theme/toggle
func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.settingsSvc.ToggleTheme(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, theme)
}

func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTheme):
		response.BadRequest(c, 70001, "Geçersiz tema")
	default:
		response.InternalError(c)
	}
}
