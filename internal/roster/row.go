// Package roster 把值班记录整理为按日期分组的值班表，并输出为 xlsx 与 PNG 快照。
package roster

// Kind 值班表行类型
type Kind int

const (
	KindBlank        Kind = iota // 日期分组之间的空行
	KindDateHeader               // 单格：日期 + 星期
	KindColumnHeader             // 两格：列标题
	KindEntry                    // 两格：值班类型、人员
)

// String 返回行类型的稳定名称（用于 JSON 预览）
func (k Kind) String() string {
	switch k {
	case KindDateHeader:
		return "date_header"
	case KindColumnHeader:
		return "column_header"
	case KindEntry:
		return "entry"
	default:
		return "blank"
	}
}

// Row 值班表中的一行
// DateHeader 只使用 Text；ColumnHeader / Entry 使用 Left、Right；Blank 不含内容。
type Row struct {
	Kind  Kind
	Text  string
	Left  string
	Right string
}

// DateHeader 日期标题行
func DateHeader(text string) Row { return Row{Kind: KindDateHeader, Text: text} }

// ColumnHeader 列标题行
func ColumnHeader(duty, personnel string) Row {
	return Row{Kind: KindColumnHeader, Left: duty, Right: personnel}
}

// Entry 值班记录行
func Entry(dutyTypeName, personnelName string) Row {
	return Row{Kind: KindEntry, Left: dutyTypeName, Right: personnelName}
}

// Blank 空行
func Blank() Row { return Row{Kind: KindBlank} }

// Cells 以单元格形式返回该行：DateHeader 1 格，ColumnHeader / Entry 2 格，Blank 0 格
func (r Row) Cells() []string {
	switch r.Kind {
	case KindDateHeader:
		return []string{r.Text}
	case KindColumnHeader, KindEntry:
		return []string{r.Left, r.Right}
	default:
		return []string{}
	}
}

// IsHeader 日期标题与列标题在表格和快照中加粗显示
func (r Row) IsHeader() bool {
	return r.Kind == KindDateHeader || r.Kind == KindColumnHeader
}
