package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/roster"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/dataurl"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportRangeRequired = fmt.Errorf("%w: 请选择开始与结束日期", pkgerrors.ErrValidation)
	ErrExportInvalidRange  = fmt.Errorf("%w: 日期格式应为 YYYY-MM-DD", pkgerrors.ErrValidation)
	ErrExportNothing       = errors.New("所选日期范围内没有值班记录")
	ErrExportGenerateFail  = errors.New("生成值班表文件失败")
)

// ExportService 值班表导出业务接口
type ExportService interface {
	Preview(ctx context.Context, q *dto.ExportQuery) (*dto.RosterPreviewResponse, error)
	// Export 生成 xlsx，返回文件内容与文件名；成功后尽力归档一张 PNG 快照
	Export(ctx context.Context, q *dto.ExportQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.ExportConfig
	repo   *repository.Repository
	labels roster.Labels
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.ExportConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		cfg:    cfg,
		repo:   repo,
		labels: roster.TurkishLabels,
		logger: logger,
	}
}

// ────────────────────── Preview ──────────────────────

// Preview 区间内没有记录时返回空行列表，不视为错误
func (s *exportService) Preview(ctx context.Context, q *dto.ExportQuery) (*dto.RosterPreviewResponse, error) {
	start, end, err := exportRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := s.buildRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.RosterPreviewResponse{
		StartDate: start,
		EndDate:   end,
		FileName:  roster.FileName(s.cfg.FilePrefix, start, end),
		Rows:      make([]dto.RosterRowResponse, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, dto.RosterRowResponse{Kind: r.Kind.String(), Cells: r.Cells()})
	}
	return resp, nil
}

// ────────────────────── Export ──────────────────────

func (s *exportService) Export(ctx context.Context, q *dto.ExportQuery) (*bytes.Buffer, string, error) {
	start, end, err := exportRange(q)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.buildRows(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNothing
	}

	buf := new(bytes.Buffer)
	opts := roster.SheetOptions{SheetName: s.cfg.SheetName, ColumnWidth: s.cfg.ColumnWidth}
	if err := roster.WriteXLSX(buf, rows, opts); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := roster.FileName(s.cfg.FilePrefix, start, end)
	s.logger.Info("值班表已导出",
		zap.String("file", filename),
		zap.Int("rows", len(rows)),
	)

	if s.cfg.Snapshot {
		s.archiveSnapshot(ctx, start, end, rows)
	}
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func exportRange(q *dto.ExportQuery) (string, string, error) {
	start := strings.TrimSpace(q.StartDate)
	end := strings.TrimSpace(q.EndDate)
	if start == "" || end == "" {
		return "", "", ErrExportRangeRequired
	}
	return start, end, nil
}

func (s *exportService) buildRows(ctx context.Context, start, end string) ([]roster.Row, error) {
	entries, err := s.repo.DutyEntry.List(ctx)
	if err != nil {
		s.logger.Error("列出值班记录失败", zap.Error(err))
		return nil, err
	}
	rows, err := roster.Build(start, end, entries, s.labels)
	if err != nil {
		if errors.Is(err, roster.ErrInvalidRange) {
			return nil, ErrExportInvalidRange
		}
		return nil, err
	}
	return rows, nil
}

// archiveSnapshot 绘制 PNG 快照并追加到图片集合
// 失败只记录警告，不影响已经生成的表格
func (s *exportService) archiveSnapshot(ctx context.Context, start, end string, rows []roster.Row) {
	raster := s.cfg.Raster
	data, err := roster.RenderPNG(rows, roster.RasterOptions{
		Width:        raster.Width,
		RowHeight:    raster.RowHeight,
		ColumnOffset: raster.ColumnOffset,
		FontSize:     raster.FontSize,
	})
	if err != nil {
		s.logger.Warn("生成值班表快照失败", zap.Error(err))
		return
	}

	img := &model.UploadedImage{
		DataURL:     dataurl.Encode("image/png", data),
		Description: snapshotDescription(start, end),
	}
	if err := s.repo.Image.Create(ctx, img); err != nil {
		s.logger.Warn("保存值班表快照失败", zap.Error(err))
		return
	}
	s.logger.Info("值班表快照已归档", zap.String("image_id", img.ID))
}

func snapshotDescription(start, end string) string {
	return fmt.Sprintf("Nöbet Çizelgesi %s - %s", start, end)
}
