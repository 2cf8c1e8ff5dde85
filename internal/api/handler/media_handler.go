package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// MediaHandler 图片模块 HTTP 处理器
type MediaHandler struct {
	mediaSvc service.MediaService
}

// NewMediaHandler 创建 MediaHandler
func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// ListImages 获取图片列表（含导出归档的快照）
// GET /api/v1/media
func (h *MediaHandler) ListImages(c *gin.Context) {
	list, err := h.mediaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// UploadImage 上传图片
// POST /api/v1/media  (multipart: file, description)
func (h *MediaHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 51003, "Dosya seçilmedi")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, 51003, "Dosya okunamadı")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, 51003, "Dosya okunamadı")
		return
	}

	img, err := h.mediaSvc.Upload(c.Request.Context(), data, c.PostForm("description"))
	if err != nil {
		h.handleMediaError(c, err)
		return
	}
	response.Created(c, img)
}

// GetImageRaw 返回解码后的图片内容
// GET /api/v1/media/:id/raw
func (h *MediaHandler) GetImageRaw(c *gin.Context) {
	id, ok := MustGetParam(c, "id")
	if !ok {
		return
	}
	mime, payload, err := h.mediaSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleMediaError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, mime, payload)
}

// DeleteImage 删除图片（幂等）
// DELETE /api/v1/media/:id
func (h *MediaHandler) DeleteImage(c *gin.Context) {
	id, ok := MustGetParam(c, "id")
	if !ok {
		return
	}
	if err := h.mediaSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMediaError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *MediaHandler) handleMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImageInvalid):
		response.BadRequest(c, 51001, "Yalnızca resim dosyaları yüklenebilir")
	case errors.Is(err, service.ErrImageNotFound):
		response.NotFound(c, 51002, "Resim bulunamadı")
	case errors.Is(err, service.ErrImageCorrupt):
		response.Error(c, http.StatusInternalServerError, 51004, "Resim verisi bozuk")
	default:
		response.InternalError(c)
	}
}
