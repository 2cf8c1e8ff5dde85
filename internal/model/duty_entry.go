package model

import "time"

// DutyEntry 值班记录，存储键 nobet_duty_entries
//
// PersonnelName / DutyTypeName 是创建时的名称快照（值拷贝）：
// 引用的人员或值班类型之后被删除或重建，历史记录仍保留原名称，不做同步。
type DutyEntry struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`              // YYYY-MM-DD，开始日期
	DateEnd       string    `json:"dateEnd,omitempty"` // YYYY-MM-DD，可选结束日期（不校验 Date <= DateEnd）
	Day           string    `json:"day"`               // 自由文本日标签，如 "Cumartesi"、"Resmi Tatil"
	PersonnelID   string    `json:"personnelId"`
	PersonnelName string    `json:"personnelName"`
	DutyTypeID    string    `json:"dutyTypeId"`
	DutyTypeName  string    `json:"dutyTypeName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetID 返回记录 ID
func (e DutyEntry) GetID() string { return e.ID }

// DateLayout 值班日期的存储格式
const DateLayout = "2006-01-02"

// ParseDate 以 UTC 解析 YYYY-MM-DD 日期，得到当天零点
// 所有日期比较都基于该结果，与运行环境时区无关
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
