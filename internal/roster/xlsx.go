package roster

import (
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

// SheetOptions 表格输出参数，零值字段使用 DefaultSheetOptions
type SheetOptions struct {
	SheetName   string
	ColumnWidth float64
	HeaderFill  string // 标题行底色
}

// DefaultSheetOptions 默认表格参数
var DefaultSheetOptions = SheetOptions{
	SheetName:   "Nöbet Çizelgesi",
	ColumnWidth: 30,
	HeaderFill:  "#F0F0F0",
}

const defaultSheet = "Sheet1"

// WriteXLSX 将值班表写为单工作表 xlsx
// A、B 两列固定列宽；日期标题行和列标题行加粗并填充底色。
func WriteXLSX(w io.Writer, rows []Row, opts SheetOptions) error {
	if err := mergo.Merge(&opts, DefaultSheetOptions); err != nil {
		return fmt.Errorf("合并表格参数失败: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}
	// 删除默认 Sheet1
	if sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("删除默认工作表失败: %w", err)
		}
	}
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.SetColWidth(sheet, "A", "B", opts.ColumnWidth); err != nil {
		return fmt.Errorf("设置列宽失败: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{opts.HeaderFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("创建样式失败: %w", err)
	}

	for i, row := range rows {
		r := i + 1
		for j, v := range row.Cells() {
			name, _ := excelize.CoordinatesToCellName(j+1, r)
			if err := f.SetCellStr(sheet, name, v); err != nil {
				return fmt.Errorf("写入单元格 %s 失败: %w", name, err)
			}
		}
		if row.IsHeader() {
			from, _ := excelize.CoordinatesToCellName(1, r)
			to, _ := excelize.CoordinatesToCellName(2, r)
			if err := f.SetCellStyle(sheet, from, to, headerStyle); err != nil {
				return fmt.Errorf("设置样式失败: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("写入 xlsx 失败: %w", err)
	}
	return nil
}

// ReadXLSX 读回工作表内容；sheet 为空时读取第一个工作表
// 行尾空单元格会被 excelize 截掉，空行表现为长度为 0 的行。
func ReadXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("无法解析 xlsx 文件: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	return rows, nil
}
