package model

import "time"

// KVRecord 键值记录表，对应 kv_records（storage.driver=postgres）
type KVRecord struct {
	Key       string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null"           json:"value"`
	UpdatedAt time.Time `gorm:"not null"                     json:"updated_at"`
}

// TableName 指定表名
func (KVRecord) TableName() string { return "kv_records" }
