package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/roster"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

func setupTestExportService(snapshot bool) (ExportService, *repository.Repository, *mockImageRepo) {
	repo := setupTestRepo()
	images := newMockImageRepo()
	repo.Image = images

	cfg := testExportConfig()
	cfg.Snapshot = snapshot
	return NewExportService(&cfg, repo, zap.NewNop()), repo, images
}

func seedRoster(repo *repository.Repository) {
	people := seedPersonnel(repo, "Ayşe", "Mehmet", "Zeynep")
	types := seedDutyTypes(repo, "Acil", "Poliklinik")
	seedEntry(repo, "2024-06-02", "Pazar", people[0], types[0])
	seedEntry(repo, "2024-06-01", "Cumartesi", people[1], types[1])
	seedEntry(repo, "2024-06-01", "Cumartesi", people[2], types[0])
	seedEntry(repo, "2024-07-15", "Pazartesi", people[0], types[0])
}

func TestExportService_Preview(t *testing.T) {
	svc, repo, _ := setupTestExportService(true)
	seedRoster(repo)

	resp, err := svc.Preview(context.Background(), &dto.ExportQuery{StartDate: "2024-06-01", EndDate: "2024-06-02"})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if len(resp.Rows) != 9 {
		t.Fatalf("期望 9 行，实际 %d", len(resp.Rows))
	}
	if resp.Rows[0].Kind != "date_header" || resp.Rows[0].Cells[0] != "01.06.2024 CUMARTESİ" {
		t.Errorf("首行错误: %+v", resp.Rows[0])
	}
	if resp.Rows[4].Kind != "blank" || len(resp.Rows[4].Cells) != 0 {
		t.Errorf("第 5 行应为空行: %+v", resp.Rows[4])
	}
	if resp.FileName != "nobet-cizelgesi-2024-06-01-2024-06-02.xlsx" {
		t.Errorf("文件名错误: %s", resp.FileName)
	}
}

func TestExportService_Preview_Empty(t *testing.T) {
	svc, repo, _ := setupTestExportService(true)
	seedRoster(repo)

	resp, err := svc.Preview(context.Background(), &dto.ExportQuery{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	if err != nil {
		t.Fatalf("空区间预览不应报错: %v", err)
	}
	if resp.Rows == nil || len(resp.Rows) != 0 {
		t.Errorf("期望空行列表，实际: %+v", resp.Rows)
	}
}

func TestExportService_RangeErrors(t *testing.T) {
	svc, _, _ := setupTestExportService(true)
	ctx := context.Background()

	tests := []struct {
		name  string
		query dto.ExportQuery
		want  error
	}{
		{"缺少开始日期", dto.ExportQuery{EndDate: "2024-06-01"}, ErrExportRangeRequired},
		{"缺少结束日期", dto.ExportQuery{StartDate: "2024-06-01", EndDate: " "}, ErrExportRangeRequired},
		{"日期格式错误", dto.ExportQuery{StartDate: "01.06.2024", EndDate: "2024-06-02"}, ErrExportInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			if _, err := svc.Preview(ctx, &q); !errors.Is(err, tt.want) || !errors.Is(err, pkgerrors.ErrValidation) {
				t.Errorf("Preview 期望 %v，实际: %v", tt.want, err)
			}
			if _, _, err := svc.Export(ctx, &q); !errors.Is(err, tt.want) {
				t.Errorf("Export 期望 %v，实际: %v", tt.want, err)
			}
		})
	}
}

func TestExportService_Export_Nothing(t *testing.T) {
	svc, repo, images := setupTestExportService(true)
	seedRoster(repo)

	_, _, err := svc.Export(context.Background(), &dto.ExportQuery{StartDate: "2024-06-30", EndDate: "2024-06-01"})
	if !errors.Is(err, ErrExportNothing) {
		t.Errorf("期望 ErrExportNothing，实际: %v", err)
	}
	if len(images.images) != 0 {
		t.Error("没有导出时不应归档快照")
	}
}

func TestExportService_Export_WritesSheetAndSnapshot(t *testing.T) {
	svc, repo, images := setupTestExportService(true)
	seedRoster(repo)

	buf, filename, err := svc.Export(context.Background(), &dto.ExportQuery{StartDate: "2024-06-01", EndDate: "2024-06-30"})
	if err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if filename != "nobet-cizelgesi-2024-06-01-2024-06-30.xlsx" {
		t.Errorf("文件名错误: %s", filename)
	}

	rows, err := roster.ReadXLSX(buf, "Nöbet Çizelgesi")
	if err != nil {
		t.Fatalf("读回 xlsx 失败: %v", err)
	}
	if len(rows) < 8 || rows[0][0] != "01.06.2024 CUMARTESİ" || rows[2][1] != "Mehmet" {
		t.Errorf("xlsx 内容错误: %v", rows)
	}

	if len(images.images) != 1 {
		t.Fatalf("期望归档 1 张快照，实际 %d", len(images.images))
	}
	snap := images.images[0]
	if snap.Description != "Nöbet Çizelgesi 2024-06-01 - 2024-06-30" {
		t.Errorf("快照描述错误: %s", snap.Description)
	}
	if len(snap.DataURL) < len("data:image/png;base64,") || snap.DataURL[:22] != "data:image/png;base64," {
		t.Errorf("快照应为 PNG data URL")
	}
}

func TestExportService_Export_SnapshotFailureSwallowed(t *testing.T) {
	svc, repo, images := setupTestExportService(true)
	seedRoster(repo)
	images.createErr = errStorage

	buf, _, err := svc.Export(context.Background(), &dto.ExportQuery{StartDate: "2024-06-01", EndDate: "2024-06-02"})
	if err != nil {
		t.Fatalf("快照失败不应影响导出: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("期望 xlsx 内容非空")
	}
}

func TestExportService_Export_SnapshotDisabled(t *testing.T) {
	svc, repo, images := setupTestExportService(false)
	seedRoster(repo)

	if _, _, err := svc.Export(context.Background(), &dto.ExportQuery{StartDate: "2024-06-01", EndDate: "2024-06-02"}); err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if len(images.images) != 0 {
		t.Errorf("关闭快照后不应归档，实际 %d 张", len(images.images))
	}
}
