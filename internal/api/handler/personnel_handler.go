package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// PersonnelHandler 人员模块 HTTP 处理器
type PersonnelHandler struct {
	personnelSvc service.PersonnelService
}

// NewPersonnelHandler 创建 PersonnelHandler
func NewPersonnelHandler(personnelSvc service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnelSvc: personnelSvc}
}

// ListPersonnel 获取人员列表
// GET /api/v1/personnel
func (h *PersonnelHandler) ListPersonnel(c *gin.Context) {
	list, err := h.personnelSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// CreatePersonnel 新增人员
// POST /api/v1/personnel
func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParams(c, err)
		return
	}

	p, err := h.personnelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.Created(c, p)
}

// DeletePersonnel 删除人员（幂等）
// DELETE /api/v1/personnel/:id
func (h *PersonnelHandler) DeletePersonnel(c *gin.Context) {
	id, ok := MustGetParam(c, "id")
	if !ok {
		return
	}
	if err := h.personnelSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.OK(c, nil)
}

// handlePersonnelError 统一处理人员模块业务错误
func (h *PersonnelHandler) handlePersonnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		response.BadRequest(c, 20001, "Ad alanı boş olamaz")
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 20002, "Personel bulunamadı")
	default:
		response.InternalError(c)
	}
}
