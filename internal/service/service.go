package service

import (
	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Personnel PersonnelService
	DutyType  DutyTypeService
	DutyEntry DutyEntryService
	Media     MediaService
	Stats     StatsService
	Dashboard DashboardService
	Export    ExportService
	Settings  SettingsService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		Personnel: NewPersonnelService(repo, logger),
		DutyType:  NewDutyTypeService(repo, logger),
		DutyEntry: NewDutyEntryService(repo, logger),
		Media:     NewMediaService(repo, logger),
		Stats:     NewStatsService(repo, logger),
		Dashboard: NewDashboardService(repo, logger),
		Export:    NewExportService(&cfg.Export, repo, logger),
		Settings:  NewSettingsService(repo, logger),
	}
}

// timeLayout 响应中的时间格式
const timeLayout = "2006-01-02T15:04:05Z07:00"
