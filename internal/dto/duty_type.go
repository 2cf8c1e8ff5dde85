package dto

// ── 值班类型模块 DTO ──

// CreateDutyTypeRequest 新增值班类型请求
type CreateDutyTypeRequest struct {
	Name string `json:"name" binding:"max=200"`
}

// DutyTypeResponse 值班类型响应
type DutyTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
