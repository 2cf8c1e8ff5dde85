package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/stats"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 统计模块业务错误 ──

var (
	ErrStatsInvalidMonth = fmt.Errorf("%w: 月份必须在 0-11 之间", pkgerrors.ErrValidation)
)

// StatsService 统计业务接口
type StatsService interface {
	All(ctx context.Context, q dto.StatsQuery) ([]dto.PersonnelStatsResponse, error)
	ForPersonnel(ctx context.Context, personnelID string, q dto.StatsQuery) (*dto.PersonnelStatsResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// All 每个人员一行，顺序与人员集合一致；没有记录的人员 total 为 0
func (s *statsService) All(ctx context.Context, q dto.StatsQuery) ([]dto.PersonnelStatsResponse, error) {
	if err := validateStatsQuery(q); err != nil {
		return nil, err
	}

	personnel, err := s.repo.Personnel.List(ctx)
	if err != nil {
		s.logger.Error("列出人员失败", zap.Error(err))
		return nil, err
	}
	entries, err := s.repo.DutyEntry.List(ctx)
	if err != nil {
		s.logger.Error("列出值班记录失败", zap.Error(err))
		return nil, err
	}

	rows := stats.All(personnel, entries, q.Filter())
	result := make([]dto.PersonnelStatsResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.PersonnelStatsResponse{
			Person:     toPersonnelResponse(&row.Person),
			Total:      row.Stats.Total,
			ByDutyType: row.Stats.ByDutyType,
			ByDay:      row.Stats.ByDay,
		})
	}
	return result, nil
}

// ForPersonnel 只按 personnelID 过滤值班记录，不要求人员仍然存在
// 人员已删除时，从其最新一条记录的名称快照还原人员信息
func (s *statsService) ForPersonnel(ctx context.Context, personnelID string, q dto.StatsQuery) (*dto.PersonnelStatsResponse, error) {
	if err := validateStatsQuery(q); err != nil {
		return nil, err
	}

	entries, err := s.repo.DutyEntry.List(ctx)
	if err != nil {
		s.logger.Error("列出值班记录失败", zap.Error(err))
		return nil, err
	}

	var person dto.PersonnelResponse
	p, err := s.repo.Personnel.GetByID(ctx, personnelID)
	switch {
	case err == nil:
		person = toPersonnelResponse(p)
	case errors.Is(err, repository.ErrRecordNotFound):
		person = personFromSnapshot(entries, personnelID)
	default:
		s.logger.Error("查询人员失败", zap.String("personnel_id", personnelID), zap.Error(err))
		return nil, err
	}

	st := stats.ForPersonnel(entries, personnelID, q.Filter())
	return &dto.PersonnelStatsResponse{
		Person:     person,
		Total:      st.Total,
		ByDutyType: st.ByDutyType,
		ByDay:      st.ByDay,
	}, nil
}

// personFromSnapshot 取该人员最新创建的记录中的名称；没有任何记录时只返回 ID
func personFromSnapshot(entries []model.DutyEntry, personnelID string) dto.PersonnelResponse {
	resp := dto.PersonnelResponse{ID: personnelID}
	var newest time.Time
	found := false
	for _, e := range entries {
		if e.PersonnelID != personnelID {
			continue
		}
		if !found || e.CreatedAt.After(newest) {
			resp.Name = e.PersonnelName
			newest = e.CreatedAt
			found = true
		}
	}
	return resp
}

func validateStatsQuery(q dto.StatsQuery) error {
	if q.Month != nil && (*q.Month < 0 || *q.Month > 11) {
		return ErrStatsInvalidMonth
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// 首页概览
// ════════════════════════════════════════════════════════════

// DashboardService 首页概览业务接口
type DashboardService interface {
	Summary(ctx context.Context, now time.Time) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// Summary 各集合的记录数，以及开始日期落在 now 所在月份的值班记录数
func (s *dashboardService) Summary(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	personnel, err := s.repo.Personnel.List(ctx)
	if err != nil {
		s.logger.Error("列出人员失败", zap.Error(err))
		return nil, err
	}
	dutyTypes, err := s.repo.DutyType.List(ctx)
	if err != nil {
		s.logger.Error("列出值班类型失败", zap.Error(err))
		return nil, err
	}
	entries, err := s.repo.DutyEntry.List(ctx)
	if err != nil {
		s.logger.Error("列出值班记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.DashboardResponse{
		PersonnelCount: len(personnel),
		DutyTypeCount:  len(dutyTypes),
		DutyEntryCount: len(entries),
		ThisMonthCount: stats.CountInMonth(entries, now.Year(), int(now.Month())),
		Month:          now.Format("2006-01"),
	}, nil
}
