package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// PreviewRoster 预览值班表
// GET /api/v1/export/preview?start_date=2024-06-01&end_date=2024-06-30
func (h *ExportHandler) PreviewRoster(c *gin.Context) {
	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.InvalidParams(c, err)
		return
	}

	preview, err := h.exportSvc.Preview(c.Request.Context(), &q)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.OK(c, preview)
}

// ExportRoster 下载值班表 xlsx
// GET /api/v1/export/roster?start_date=2024-06-01&end_date=2024-06-30
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.InvalidParams(c, err)
		return
	}

	buf, filename, err := h.exportSvc.Export(c.Request.Context(), &q)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportRangeRequired):
		response.BadRequest(c, 60001, "Lütfen başlangıç ve bitiş tarihlerini seçin")
	case errors.Is(err, service.ErrExportInvalidRange):
		response.BadRequest(c, 60002, "Geçersiz tarih aralığı")
	case errors.Is(err, service.ErrExportNothing):
		response.NotFound(c, 60003, "Seçilen tarih aralığında nöbet kaydı bulunamadı")
	default:
		response.InternalError(c)
	}
}
