package dto

import "github.com/ilyasbozdemir/personel-duty-tracking/internal/stats"

// ── 统计模块 DTO ──

// StatsQuery 统计筛选条件；Month 从 0 开始（0 = 一月）
type StatsQuery struct {
	Year  *int
	Month *int
}

// Filter 转换为统计引擎的筛选条件
func (q StatsQuery) Filter() stats.Filter {
	return stats.Filter{Year: q.Year, Month: q.Month}
}

// PersonnelStatsResponse 单个人员统计
type PersonnelStatsResponse struct {
	Person     PersonnelResponse `json:"person"`
	Total      int               `json:"total"`
	ByDutyType map[string]int    `json:"by_duty_type"`
	ByDay      map[string]int    `json:"by_day"`
}

// DashboardResponse 首页概览
type DashboardResponse struct {
	PersonnelCount int    `json:"personnel_count"`
	DutyTypeCount  int    `json:"duty_type_count"`
	DutyEntryCount int    `json:"duty_entry_count"`
	ThisMonthCount int    `json:"this_month_count"`
	Month          string `json:"month"` // YYYY-MM
}
