package database

import (
	"testing"

	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  gormlogger.LogLevel
	}{
		{"debug", gormlogger.Info},
		{"info", gormlogger.Warn},
		{"warn", gormlogger.Error},
		{"error", gormlogger.Error},
		{"", gormlogger.Warn},
	}
	for _, tt := range tests {
		if got := gormLogLevel(tt.level); got != tt.want {
			t.Errorf("gormLogLevel(%q) = %v, 期望 %v", tt.level, got, tt.want)
		}
	}
}
