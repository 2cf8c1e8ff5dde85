package dto

// ── 图片模块 DTO ──

// ImageResponse 图片响应
type ImageResponse struct {
	ID          string `json:"id"`
	DataURL     string `json:"data_url"`
	Description string `json:"description,omitempty"`
	UploadedAt  string `json:"uploaded_at"`
}
