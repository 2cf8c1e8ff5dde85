package dto

// ── 设置模块 DTO ──

// UpdateThemeRequest 设置主题请求
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// ThemeResponse 主题响应
type ThemeResponse struct {
	Theme string `json:"theme"`
}
