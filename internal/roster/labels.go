package roster

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labels 值班表的本地化文本
type Labels struct {
	DutyHeader      string
	PersonnelHeader string
	DateLayout      string    // Go 时间格式
	DayNames        [7]string // 按 time.Weekday 索引（0 = 周日）
	Language        language.Tag
}

// TurkishLabels 默认（tr-TR）文本
var TurkishLabels = Labels{
	DutyHeader:      "GÖREV",
	PersonnelHeader: "PERSONEL",
	DateLayout:      "02.01.2006",
	DayNames:        [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
	Language:        language.Turkish,
}

// dateTitle 日期标题：本地化日期 + 大写星期名
// 星期由日期本身计算，与记录上的自由文本日标签无关
func (l Labels) dateTitle(d time.Time) string {
	day := cases.Upper(l.Language).String(l.DayNames[d.Weekday()])
	return d.Format(l.DateLayout) + " " + day
}
