package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// StatsHandler 统计与首页概览 HTTP 处理器
type StatsHandler struct {
	statsSvc     service.StatsService
	dashboardSvc service.DashboardService
	now          func() time.Time
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService, dashboardSvc service.DashboardService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc, dashboardSvc: dashboardSvc, now: time.Now}
}

// Dashboard 首页概览
// GET /api/v1/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardSvc.Summary(c.Request.Context(), h.now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, summary)
}

// ListStats 所有人员的统计
// GET /api/v1/stats?year=2024&month=5  (month 从 0 开始)
func (h *StatsHandler) ListStats(c *gin.Context) {
	q, ok := bindStatsQuery(c)
	if !ok {
		return
	}
	list, err := h.statsSvc.All(c.Request.Context(), q)
	if err != nil {
		h.handleStatsError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetPersonnelStats 单个人员的统计，人员已删除时仍统计其遗留记录
// GET /api/v1/stats/:personnel_id
func (h *StatsHandler) GetPersonnelStats(c *gin.Context) {
	personnelID, ok := MustGetParam(c, "personnel_id")
	if !ok {
		return
	}
	q, ok := bindStatsQuery(c)
	if !ok {
		return
	}
	result, err := h.statsSvc.ForPersonnel(c.Request.Context(), personnelID, q)
	if err != nil {
		h.handleStatsError(c, err)
		return
	}
	response.OK(c, result)
}

func bindStatsQuery(c *gin.Context) (dto.StatsQuery, bool) {
	year, ok := OptionalIntQuery(c, "year")
	if !ok {
		return dto.StatsQuery{}, false
	}
	month, ok := OptionalIntQuery(c, "month")
	if !ok {
		return dto.StatsQuery{}, false
	}
	return dto.StatsQuery{Year: year, Month: month}, true
}

func (h *StatsHandler) handleStatsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStatsInvalidMonth):
		response.ErrorWithDetails(c, 400, 10001, "Geçersiz parametre", "month 0-11 arasında olmalıdır")
	default:
		response.InternalError(c)
	}
}
