package dto

// ── 导出模块 DTO ──

// ExportQuery 导出日期范围（YYYY-MM-DD，闭区间）
type ExportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// RosterRowResponse 值班表预览行
// kind 取值：date_header / column_header / entry / blank
type RosterRowResponse struct {
	Kind  string   `json:"kind"`
	Cells []string `json:"cells"`
}

// RosterPreviewResponse 值班表预览
type RosterPreviewResponse struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	FileName  string              `json:"file_name"`
	Rows      []RosterRowResponse `json:"rows"`
}
