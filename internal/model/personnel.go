package model

import "time"

// Personnel 可被安排值班的人员，存储键 nobet_personnel
// 创建后不可修改，只能删除
type Personnel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID 返回记录 ID（集合通用删除使用）
func (p Personnel) GetID() string { return p.ID }
