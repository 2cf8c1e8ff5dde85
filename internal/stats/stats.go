// Package stats 按人员汇总值班次数。
//
// 所有函数都是纯函数：输入集合快照，输出统计结果，不访问存储。
package stats

import (
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// Filter 年 / 月过滤条件，nil 表示不过滤
type Filter struct {
	Year  *int
	Month *int // 0 = 一月（与前端下拉框取值一致）
}

// Stats 单个人员的统计结果
//
// ByDutyType 按名称快照分组（值班类型改名后新旧名称分别计数）；
// ByDay 按日标签原样分组，不做大小写或拼写归一。
type Stats struct {
	Total      int            `json:"total"`
	ByDutyType map[string]int `json:"byDutyType"`
	ByDay      map[string]int `json:"byDay"`
}

// PersonnelStats 人员及其统计
type PersonnelStats struct {
	Person model.Personnel `json:"person"`
	Stats  Stats           `json:"stats"`
}

// matches 仅按开始日期判断年月，跨月 / 跨年的区间记录整体归入开始日期所在月份
func (f Filter) matches(e model.DutyEntry) bool {
	if f.Year == nil && f.Month == nil {
		return true
	}
	d, err := model.ParseDate(e.Date)
	if err != nil {
		return false
	}
	if f.Year != nil && d.Year() != *f.Year {
		return false
	}
	if f.Month != nil && int(d.Month())-1 != *f.Month {
		return false
	}
	return true
}

// ForPersonnel 统计指定人员的值班次数
func ForPersonnel(entries []model.DutyEntry, personnelID string, f Filter) Stats {
	s := Stats{
		ByDutyType: make(map[string]int),
		ByDay:      make(map[string]int),
	}
	for _, e := range entries {
		if e.PersonnelID != personnelID || !f.matches(e) {
			continue
		}
		s.Total++
		s.ByDutyType[e.DutyTypeName]++
		s.ByDay[e.Day]++
	}
	return s
}

// All 按人员集合顺序统计每个人员；没有值班记录的人员也会出现（Total=0）
func All(personnel []model.Personnel, entries []model.DutyEntry, f Filter) []PersonnelStats {
	result := make([]PersonnelStats, 0, len(personnel))
	for _, p := range personnel {
		result = append(result, PersonnelStats{
			Person: p,
			Stats:  ForPersonnel(entries, p.ID, f),
		})
	}
	return result
}

// CountInMonth 统计开始日期落在给定年月内的记录数（month 为 time.Month 的 1-12）
func CountInMonth(entries []model.DutyEntry, year int, month int) int {
	m := month - 1
	f := Filter{Year: &year, Month: &m}
	n := 0
	for _, e := range entries {
		if f.matches(e) {
			n++
		}
	}
	return n
}
