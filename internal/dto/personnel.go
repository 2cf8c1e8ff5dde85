package dto

// ── 人员模块 DTO ──

// CreatePersonnelRequest 新增人员请求
// 名称去除首尾空白后不能为空（由 Service 校验）
type CreatePersonnelRequest struct {
	Name string `json:"name" binding:"max=200"`
}

// PersonnelResponse 人员信息响应
type PersonnelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
