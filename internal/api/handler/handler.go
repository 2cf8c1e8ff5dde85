package handler

import "github.com/ilyasbozdemir/personel-duty-tracking/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Personnel *PersonnelHandler
	DutyType  *DutyTypeHandler
	DutyEntry *DutyEntryHandler
	Media     *MediaHandler
	Stats     *StatsHandler
	Export    *ExportHandler
	Settings  *SettingsHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Personnel: NewPersonnelHandler(svc.Personnel),
		DutyType:  NewDutyTypeHandler(svc.DutyType),
		DutyEntry: NewDutyEntryHandler(svc.DutyEntry),
		Media:     NewMediaHandler(svc.Media),
		Stats:     NewStatsHandler(svc.Stats, svc.Dashboard),
		Export:    NewExportHandler(svc.Export),
		Settings:  NewSettingsHandler(svc.Settings),
	}
}
