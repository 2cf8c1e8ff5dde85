package model

import "time"

// DutyType 值班类型（岗位 / 科室），存储键 nobet_duty_types
type DutyType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID 返回记录 ID
func (d DutyType) GetID() string { return d.ID }
