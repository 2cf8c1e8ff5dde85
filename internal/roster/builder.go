package roster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
)

// ErrInvalidRange 起止日期不是 YYYY-MM-DD
var ErrInvalidRange = errors.New("日期范围无效")

// Build 生成 [start, end] 闭区间内的值班表行
//
// 区间比较使用 UTC 零点的日历日期；日期无法解析的记录直接跳过。
// 记录只按开始日期分组（DateEnd 不参与），分组键按字典序升序，
// 组内保持插入顺序。区间内没有记录时返回空切片，由调用方决定如何处理。
func Build(start, end string, entries []model.DutyEntry, labels Labels) ([]Row, error) {
	from, err := model.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start=%q", ErrInvalidRange, start)
	}
	to, err := model.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end=%q", ErrInvalidRange, end)
	}

	groups := make(map[string][]model.DutyEntry)
	for _, e := range entries {
		d, err := model.ParseDate(e.Date)
		if err != nil || d.Before(from) || d.After(to) {
			continue
		}
		groups[e.Date] = append(groups[e.Date], e)
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]Row, 0, len(entries)+3*len(dates))
	for _, date := range dates {
		d, _ := model.ParseDate(date)
		rows = append(rows,
			DateHeader(labels.dateTitle(d)),
			ColumnHeader(labels.DutyHeader, labels.PersonnelHeader),
		)
		for _, e := range groups[date] {
			rows = append(rows, Entry(e.DutyTypeName, e.PersonnelName))
		}
		rows = append(rows, Blank())
	}
	return rows, nil
}

// FileName 导出文件名：<prefix>-<start>-<end>.xlsx
func FileName(prefix, start, end string) string {
	return fmt.Sprintf("%s-%s-%s.xlsx", prefix, start, end)
}
