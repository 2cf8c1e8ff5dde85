package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// DutyEntryHandler 值班记录模块 HTTP 处理器
type DutyEntryHandler struct {
	dutyEntrySvc service.DutyEntryService
}

// NewDutyEntryHandler 创建 DutyEntryHandler
func NewDutyEntryHandler(dutyEntrySvc service.DutyEntryService) *DutyEntryHandler {
	return &DutyEntryHandler{dutyEntrySvc: dutyEntrySvc}
}

// ListDutyEntries 获取值班记录（按开始日期倒序）
// GET /api/v1/duty-entries
func (h *DutyEntryHandler) ListDutyEntries(c *gin.Context) {
	list, err := h.dutyEntrySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// CreateDutyEntry 新增值班记录
// POST /api/v1/duty-entries
func (h *DutyEntryHandler) CreateDutyEntry(c *gin.Context) {
	var req dto.CreateDutyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	entry, err := h.dutyEntrySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDutyEntryError(c, err)
		return
	}
	response.Created(c, entry)
}

// DeleteDutyEntry 删除值班记录（幂等）
// DELETE /api/v1/duty-entries/:id
func (h *DutyEntryHandler) DeleteDutyEntry(c *gin.Context) {
	id, ok := MustGetParam(c, "id")
	if !ok {
		return
	}
	if err := h.dutyEntrySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDutyEntryError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleDutyEntryError 统一处理值班记录模块业务错误
func (h *DutyEntryHandler) handleDutyEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDutyFieldsRequired):
		response.BadRequest(c, 40001, "Lütfen tüm alanları doldurun")
	case errors.Is(err, service.ErrDutyDateEndRequired):
		response.BadRequest(c, 40002, "Bitiş tarihi gerekli")
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 40003, "Personel bulunamadı")
	case errors.Is(err, service.ErrDutyTypeNotFound):
		response.NotFound(c, 40004, "Görev türü bulunamadı")
	default:
		response.InternalError(c)
	}
}
