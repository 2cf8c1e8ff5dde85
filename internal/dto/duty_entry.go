package dto

// ── 值班记录模块 DTO ──

// CreateDutyEntryRequest 新增值班记录请求
// IsDateRange 为 false 时忽略 DateEnd
type CreateDutyEntryRequest struct {
	Date        string `json:"date"`
	IsDateRange bool   `json:"is_date_range"`
	DateEnd     string `json:"date_end"`
	Day         string `json:"day"`
	PersonnelID string `json:"personnel_id"`
	DutyTypeID  string `json:"duty_type_id"`
}

// DutyEntryResponse 值班记录响应（名称为创建时的快照）
type DutyEntryResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DateEnd       string `json:"date_end,omitempty"`
	Day           string `json:"day"`
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	DutyTypeID    string `json:"duty_type_id"`
	DutyTypeName  string `json:"duty_type_name"`
	CreatedAt     string `json:"created_at"`
}
