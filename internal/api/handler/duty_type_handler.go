package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// DutyTypeHandler 值班类型模块 HTTP 处理器
type DutyTypeHandler struct {
	dutyTypeSvc service.DutyTypeService
}

// NewDutyTypeHandler 创建 DutyTypeHandler
func NewDutyTypeHandler(dutyTypeSvc service.DutyTypeService) *DutyTypeHandler {
	return &DutyTypeHandler{dutyTypeSvc: dutyTypeSvc}
}

// ListDutyTypes 获取值班类型列表
// GET /api/v1/duty-types
func (h *DutyTypeHandler) ListDutyTypes(c *gin.Context) {
	list, err := h.dutyTypeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// CreateDutyType 新增值班类型
// POST /api/v1/duty-types
func (h *DutyTypeHandler) CreateDutyType(c *gin.Context) {
	var req dto.CreateDutyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	dt, err := h.dutyTypeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDutyTypeError(c, err)
		return
	}
	response.Created(c, dt)
}

// DeleteDutyType 删除值班类型（幂等）
// DELETE /api/v1/duty-types/:id
func (h *DutyTypeHandler) DeleteDutyType(c *gin.Context) {
	id, ok := MustGetParam(c, "id")
	if !ok {
		return
	}
	if err := h.dutyTypeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDutyTypeError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DutyTypeHandler) handleDutyTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		response.BadRequest(c, 30001, "Ad alanı boş olamaz")
	case errors.Is(err, service.ErrDutyTypeNotFound):
		response.NotFound(c, 30002, "Görev türü bulunamadı")
	default:
		response.InternalError(c)
	}
}
