package model

import "time"

// UploadedImage 上传或导出归档的图片，存储键 nobet_images
type UploadedImage struct {
	ID          string    `json:"id"`
	DataURL     string    `json:"dataUrl"` // data:<mime>;base64,<payload>
	UploadedAt  time.Time `json:"uploadedAt"`
	Description string    `json:"description,omitempty"`
}

// GetID 返回记录 ID
func (i UploadedImage) GetID() string { return i.ID }
